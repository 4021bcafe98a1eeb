package index

import "github.com/mleoca/ucn/model"

// confidenceFor implements §4.6's advisory confidence tag: span and
// generic-depth degrade a function's confidence; file size degrades
// everything in a large file. It never affects resolution, only how
// results are flagged (§4.6, §9's "confidence scoring" open note).
func confidenceFor(fn *model.Function, td *model.TypeDecl, fr *model.FileRecord) model.Confidence {
	degradations := 0

	if fn != nil {
		span := fn.EndLine - fn.StartLine
		if span > 500 {
			degradations += 2
		} else if span > 200 {
			degradations++
		}
		if genericDepth(fn.Generics) > 2 {
			degradations++
		}
	}
	if td != nil {
		span := td.EndLine - td.StartLine
		if span > 500 {
			degradations += 2
		} else if span > 200 {
			degradations++
		}
	}
	if fr != nil && fr.TotalLines > 3000 {
		degradations++
	}

	switch {
	case degradations == 0:
		return model.ConfidenceHigh
	case degradations == 1:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

// genericDepth measures nesting by counting the deepest run of
// brackets across a generics list's raw text (e.g. "T<U<V>>" has depth
// 2); a flat list like ["T", "U"] has depth 0.
func genericDepth(generics []string) int {
	maxDepth := 0
	for _, g := range generics {
		depth, cur := 0, 0
		for _, r := range g {
			switch r {
			case '<', '[':
				cur++
				if cur > depth {
					depth = cur
				}
			case '>', ']':
				if cur > 0 {
					cur--
				}
			}
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	return maxDepth
}
