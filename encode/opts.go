package encode

type EncodeOption func(*EncState)

func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

func EncodeSort(v bool) EncodeOption {
	return func(es *EncState) { es.sort = v }
}

// EncodeTabWidth sets the indentation width; 0 or less indents with
// tabs.
func EncodeTabWidth(n int) EncodeOption {
	return func(es *EncState) { es.tabWidth = n }
}

// EncodeMaxWidth keeps containers inline when they fit within n
// columns. 0 disables it.
func EncodeMaxWidth(n int) EncodeOption {
	return func(es *EncState) { es.maxWidth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
