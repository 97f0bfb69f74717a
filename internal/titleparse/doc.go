// Package titleparse turns a noisy video title and its uploader/channel name
// into structured music metadata (artist, track, featuring credit) with a
// confidence rating.
//
// Parsing is a fixed pipeline over two strings:
//
//  1. Normalize strips emoji, hashtags, track numbers, "out now" tails and
//     promotional parentheticals such as "(Official Video)".
//  2. Three mutually exclusive stages try to name the artist and track, first
//     match wins: quoted titles, ordered delimiter splitting (dash, colon, "by",
//     en dash, pipe, em dash) and finally the channel name as artist.
//  3. Low confidence results are re-checked against the channel name, a
//     featuring clause is extracted, and long non-music titles (interviews,
//     podcasts, trailers) are vetoed back to unparsed.
//
// The pipeline never fails. Uncertainty is reported through Metadata.Parsed,
// Metadata.Method and Metadata.Confidence only. All lookup tables are
// read-only package data, so Parse is safe for concurrent use without
// coordination and returns identical output for identical input.
package titleparse
