package ast

// Encode converts a document into a tree of maps and slices suitable for
// JSON or YAML serialization. Every node carries a "type" key with its kind.
func Encode(doc *Document) map[string]any {
	if doc == nil {
		return nil
	}
	return encodeNode(doc)
}

func encodeNode(n Node) map[string]any {
	out := map[string]any{"type": n.Kind().String()}

	switch node := n.(type) {
	case *Document:
		out["blocks"] = encodeBlocks(node.Blocks)
	case *Paragraph:
		out["content"] = encodeInlines(node.Content)
	case *Heading:
		out["style"] = node.Style.String()
		out["level"] = node.Level
		out["content"] = encodeInlines(node.Content)
	case *BlockQuote:
		out["blocks"] = encodeBlocks(node.Blocks)
	case *List:
		if node.Type.Ordered {
			out["ordered"] = true
			out["start"] = node.Type.Start
		} else {
			out["bullet"] = node.Type.Bullet.String()
		}
		items := make([]any, len(node.Items))
		for i, item := range node.Items {
			items[i] = encodeNode(item)
		}
		out["items"] = items
	case *ListItem:
		if node.Task != TaskNone {
			out["task"] = node.Task.String()
		}
		out["blocks"] = encodeBlocks(node.Blocks)
	case *CodeBlock:
		out["fenced"] = node.Fenced
		if node.Info != "" {
			out["info"] = node.Info
		}
		out["literal"] = node.Literal
	case *HTMLBlock:
		out["raw"] = node.Raw
	case *Definition:
		out["label"] = node.Label
		out["destination"] = node.Destination
		if node.Title != "" {
			out["title"] = node.Title
		}
	case *Table:
		aligns := make([]any, len(node.Alignments))
		for i, a := range node.Alignments {
			aligns[i] = a.String()
		}
		out["alignments"] = aligns
		rows := make([]any, len(node.Rows))
		for i, row := range node.Rows {
			cells := make([]any, len(row))
			for j, cell := range row {
				cells[j] = encodeInlines(cell)
			}
			rows[i] = cells
		}
		out["rows"] = rows
	case *FootnoteDefinition:
		out["label"] = node.Label
		out["blocks"] = encodeBlocks(node.Blocks)
	case *Text:
		out["value"] = node.Value
	case *Code:
		out["value"] = node.Value
	case *HTML:
		out["raw"] = node.Raw
	case *Link:
		out["destination"] = node.Destination
		if node.Title != "" {
			out["title"] = node.Title
		}
		out["children"] = encodeInlines(node.Children)
	case *LinkReference:
		out["label"] = node.Label
		out["text"] = encodeInlines(node.Text)
	case *Image:
		out["destination"] = node.Destination
		if node.Title != "" {
			out["title"] = node.Title
		}
		out["alt"] = node.Alt
	case *Emphasis:
		out["children"] = encodeInlines(node.Children)
	case *Strong:
		out["children"] = encodeInlines(node.Children)
	case *Strikethrough:
		out["children"] = encodeInlines(node.Children)
	case *Autolink:
		out["url"] = node.URL
		if node.IsEmail() {
			out["email"] = true
		}
	case *FootnoteReference:
		out["label"] = node.Label
	}

	return out
}

func encodeBlocks(blocks []Block) []any {
	out := make([]any, len(blocks))
	for i, b := range blocks {
		out[i] = encodeNode(b)
	}
	return out
}

func encodeInlines(inlines []Inline) []any {
	out := make([]any, len(inlines))
	for i, in := range inlines {
		out[i] = encodeNode(in)
	}
	return out
}
