// Package network loads a transit network description into a core.Graph.
//
// Two formats are understood. CSV lists one connection per row:
//
//	# line,station,minutes,next station
//	U1,Leopoldau,2,Grossfeldsiedlung
//	U1,Grossfeldsiedlung,1,Aderklaaer Strasse
//
// YAML lists each line as an ordered run of stops, where next is the travel
// time to the following stop:
//
//	lines:
//	  - name: U1
//	    stops:
//	      - {station: Leopoldau, next: 2}
//	      - {station: Grossfeldsiedlung}
//
// Every connection is undirected. A malformed record aborts the load with a
// *RecordError naming its row; errors.Is(err, ErrMalformedRecord) matches all
// of them. Sample returns a small embedded excerpt of the Vienna U-Bahn.
package network
