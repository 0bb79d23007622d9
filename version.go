package occ

// Version of the front end.
const Version = "0.3.0"
