package comment

// Aggregate turns the comment lines of one file into collected comments.
//
// A marked line always starts a new comment. An unmarked line is appended
// to the previous comment only when it directly follows the last accepted
// line; otherwise it is dropped. Empty continuation lines are folded in
// like any other.
//
// lines must come from a single file and be in ascending line order.
func Aggregate(file string, lines []Line) []Comment {
	var comments []Comment
	last := 0

	for _, line := range lines {
		if line.Marked() {
			comments = append(comments, Comment{
				File:    file,
				Line:    line.Number,
				Content: line.Text,
				Marker:  line.Marker,
			})
			last = line.Number
			continue
		}

		if len(comments) == 0 || last == 0 || line.Number != last+1 {
			continue
		}
		comments[len(comments)-1].extend(line.Text)
		last = line.Number
	}

	return comments
}
