package locator

// Insertion records one in-place edit made to a document: Length bytes added
// at Offset. A replacement that shrinks the document carries a negative
// Length.
type Insertion struct {
	Offset int64
	Length int64
}

// ApplyInsertions corrects raw byte offsets for edits made earlier in the
// same document. Every insertion at or before an offset shifts that offset
// by the insertion's length; insertions strictly after it leave it alone.
// Offsets are taken from the document as it was before any of the
// insertions, so corrections accumulate.
func ApplyInsertions(offsets []int64, insertions []Insertion) []int64 {
	corrected := make([]int64, len(offsets))
	for i, off := range offsets {
		c := off
		for _, ins := range insertions {
			if ins.Offset <= off {
				c += ins.Length
			}
		}
		corrected[i] = c
	}
	return corrected
}
