// Package segment splits a combined WASON/APOPLUS diagnostic log into
// per-site buckets.
//
// Two independent machines read the same line stream. The WASON machine
// follows SetupApo sessions and binds each one to the first address of its
// first "Conn [...]" descriptor. The APOPLUS machine follows "show all
// och-inst" sessions and binds each one to the engineered address derived
// from the TopNeIp line. Lines seen before a session is bound are buffered
// and flushed into the bucket once it is; a session that never binds is
// dropped.
package segment
