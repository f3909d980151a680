// Package serialization stores network parameters as a raw stream of
// float64 values.
//
//	Format Structure:
//	  [weights of layer 0, row-major]
//	  [weights of layer 1, row-major]
//	  ...
//	  [bias column of layer 0]
//	  [bias column of layer 1]
//	  ...
//
// Every value is an IEEE-754 float64 in big-endian byte order. There is no
// header, magic or shape metadata: the reader must already hold matrices of
// the right shapes, and the total length is 8 × (number of parameters).
// Reading into a different topology silently misplaces values; a stream that
// is too short fails with io.ErrUnexpectedEOF and extra bytes are left unread.
//
// Example usage:
//
//	// Save a network
//	if err := serialization.SaveFile("xor.bin", net); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load into a network built with the same topology
//	restored, _ := nn.New(2, 1, 4, 1)
//	if err := serialization.LoadFile("xor.bin", restored); err != nil {
//	    log.Fatal(err)
//	}
package serialization
