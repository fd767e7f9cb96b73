// Package packages publishes compiled contract bytecode to the network.
//
// Bytecode is uploaded through file transactions in 4 KiB chunks and then
// instantiated with a contract create transaction. Gas charged for the
// create is available afterwards through the mirror node contract results.
package packages
