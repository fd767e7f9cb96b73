package inscriptions

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
)

const (
	// chunkContentSize is the starting window for one chunk's content.
	// JSON escaping can expand the content when it is marshaled, so the
	// window shrinks until the whole chunk message fits maxChunkBytes.
	chunkContentSize = 900

	// maxChunkBytes is the single-chunk consensus message limit.
	maxChunkBytes = 1024

	defaultMimeType = "application/octet-stream"

	memoCompression = "brotli"
	memoEncoding    = "base64"
)

// EnvelopeMeta is the token-level metadata inscribed alongside the payload.
type EnvelopeMeta struct {
	Name        string
	Description string
	URI         string
	MimeType    string
}

// envelope is the JSON document written to the inscription topic. The
// payload rides in "c" as a base64 data URL of the brotli-compressed bytes.
type envelope struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URI         string `json:"uri,omitempty"`
	Content     string `json:"c"`
}

// chunkMessage is a single topic message of an inscribed envelope. Order is
// explicit so readers do not have to trust mirror node sequence numbers.
type chunkMessage struct {
	Order   int    `json:"o"`
	Content string `json:"c"`
}

// EncodePayload compresses and encodes an inscription payload into topic
// message chunks. The returned memo carries the SHA-256 checksum of the
// original payload together with the compression and encoding used, and
// belongs on the inscription topic.
func EncodePayload(data []byte, meta EnvelopeMeta) ([][]byte, string, error) {
	mimeType := strings.TrimSpace(meta.MimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	var compressed bytes.Buffer
	writer := brotli.NewWriter(&compressed)
	if _, err := writer.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to compress inscription payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize compressed payload: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())
	document, err := json.Marshal(envelope{
		Name:        meta.Name,
		Description: meta.Description,
		URI:         meta.URI,
		Content:     fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal inscription envelope: %w", err)
	}

	content := string(document)
	var chunks [][]byte
	for order := 0; len(content) > 0; order++ {
		size := chunkContentSize
		if size > len(content) {
			size = len(content)
		}
		// Splitting inside a multi-byte rune would make json.Marshal
		// replace the dangling bytes with U+FFFD in both neighboring
		// chunks, so the cut always lands on a rune boundary.
		size = alignToRuneStart(content, size)

		message, marshalErr := json.Marshal(chunkMessage{Order: order, Content: content[:size]})
		if marshalErr != nil {
			return nil, "", fmt.Errorf("failed to marshal chunk %d: %w", order, marshalErr)
		}
		for len(message) > maxChunkBytes {
			size = alignToRuneStart(content, size-1)
			if size == 0 {
				return nil, "", fmt.Errorf("chunk %d does not fit the message limit", order)
			}
			message, marshalErr = json.Marshal(chunkMessage{Order: order, Content: content[:size]})
			if marshalErr != nil {
				return nil, "", fmt.Errorf("failed to marshal chunk %d: %w", order, marshalErr)
			}
		}

		chunks = append(chunks, message)
		content = content[size:]
	}

	checksum := sha256.Sum256(data)
	memo := fmt.Sprintf("%s:%s:%s", hex.EncodeToString(checksum[:]), memoCompression, memoEncoding)

	return chunks, memo, nil
}

// DecodePayload reassembles, decodes, and verifies an inscribed payload from
// its chunk messages and the topic memo produced by EncodePayload.
func DecodePayload(messages [][]byte, memo string) ([]byte, EnvelopeMeta, error) {
	if len(messages) == 0 {
		return nil, EnvelopeMeta{}, fmt.Errorf("inscription has no messages")
	}

	checksum, err := parseMemoChecksum(memo)
	if err != nil {
		return nil, EnvelopeMeta{}, err
	}

	chunks := make(map[int]string, len(messages))
	for _, raw := range messages {
		var chunk chunkMessage
		if err := json.Unmarshal(raw, &chunk); err != nil {
			return nil, EnvelopeMeta{}, fmt.Errorf("failed to decode chunk message: %w", err)
		}
		if _, duplicate := chunks[chunk.Order]; duplicate {
			return nil, EnvelopeMeta{}, fmt.Errorf("duplicate chunk %d", chunk.Order)
		}
		chunks[chunk.Order] = chunk.Content
	}

	orders := make([]int, 0, len(chunks))
	for order := range chunks {
		orders = append(orders, order)
	}
	sort.Ints(orders)

	var document strings.Builder
	for expected, order := range orders {
		if order != expected {
			return nil, EnvelopeMeta{}, fmt.Errorf("missing chunk %d", expected)
		}
		document.WriteString(chunks[order])
	}

	var decoded envelope
	if err := json.Unmarshal([]byte(document.String()), &decoded); err != nil {
		return nil, EnvelopeMeta{}, fmt.Errorf("failed to decode inscription envelope: %w", err)
	}

	payload, mimeType, err := decodeDataURL(decoded.Content)
	if err != nil {
		return nil, EnvelopeMeta{}, err
	}

	digest := sha256.Sum256(payload)
	if hex.EncodeToString(digest[:]) != checksum {
		return nil, EnvelopeMeta{}, fmt.Errorf("inscription checksum mismatch")
	}

	return payload, EnvelopeMeta{
		Name:        decoded.Name,
		Description: decoded.Description,
		URI:         decoded.URI,
		MimeType:    mimeType,
	}, nil
}

// alignToRuneStart moves the cut position back to the start of the rune it
// would otherwise land inside. A cut at the end of the string is already
// aligned.
func alignToRuneStart(content string, position int) int {
	for position > 0 && position < len(content) && !utf8.RuneStart(content[position]) {
		position--
	}
	return position
}

func parseMemoChecksum(memo string) (string, error) {
	parts := strings.Split(strings.TrimSpace(memo), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid inscription memo %q", memo)
	}
	if parts[1] != memoCompression || parts[2] != memoEncoding {
		return "", fmt.Errorf("unsupported inscription format %s:%s", parts[1], parts[2])
	}
	if len(parts[0]) != sha256.Size*2 {
		return "", fmt.Errorf("invalid inscription checksum %q", parts[0])
	}
	return parts[0], nil
}

func decodeDataURL(content string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "data:") {
		return nil, "", fmt.Errorf("inscription content is not a data URL")
	}

	parts := strings.SplitN(trimmed, ",", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("invalid inscription data URL")
	}

	header := strings.ToLower(parts[0])
	if !strings.Contains(header, ";base64") {
		return nil, "", fmt.Errorf("inscription data URL is not base64 encoded")
	}
	mimeType := strings.TrimPrefix(strings.SplitN(header, ";", 2)[0], "data:")

	compressed, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode inscription base64 payload: %w", err)
	}

	payload, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decompress inscription payload: %w", err)
	}

	return payload, mimeType, nil
}
