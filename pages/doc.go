// Package pages discovers per-page text files and arranges them into
// fixed-size groups for audio generation.
//
// A split PDF leaves one UTF-8 text file per page in a directory, named
// with the page number before the extension (page_1.txt, page_2.txt).
// This package turns that directory back into an ordered document:
//
//   - [Number] parses the page number out of a file name
//   - [Grouper] sorts the files numerically, optionally skips leading
//     pages, and chunks the rest into fixed-size groups
//   - [Group.OutputName] names the audio file a group renders to, with
//     page numbers zero-padded to a stable width
//
// # Ordering
//
// File names sort by parsed page number, not lexically, so page_10 follows
// page_9. Files without a parsable number get -1 and sort ahead of every
// real page. Ties keep directory order, which is itself name-sorted.
//
// # Typical Flow
//
//	grouper := pages.NewGrouper()
//	coll, err := grouper.Collect(textDir)
//	for _, g := range coll.Groups {
//	    fmt.Println(g.OutputName(coll.Pad))
//	}
package pages
