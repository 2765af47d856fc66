package level

import "math"

// documentFromTree picks the known keys out of a generic JSON/YAML tree.
func documentFromTree(raw any) Document {
	var doc Document
	root, ok := asMap(raw)
	if !ok {
		return doc
	}

	if v, ok := asNumber(root["schemaVersion"]); ok && v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
		version := int(v)
		doc.SchemaVersion = &version
	}

	if w, ok := asMap(root["world"]); ok {
		doc.World = &WorldDoc{
			W:        numberField(w, "w"),
			H:        numberField(w, "h"),
			BG:       numberList(w["bg"]),
			GridStep: numberField(w, "gridStep"),
		}
	}

	if list, ok := root["obstacles"].([]any); ok {
		for _, item := range list {
			o, ok := asMap(item)
			if !ok {
				continue
			}
			doc.Obstacles = append(doc.Obstacles, ObstacleDoc{
				X: numberField(o, "x"),
				Y: numberField(o, "y"),
				W: numberField(o, "w"),
				H: numberField(o, "h"),
				R: numberField(o, "r"),
			})
		}
	}

	if c, ok := asMap(root["camera"]); ok {
		doc.Camera = &CameraDoc{
			Lerp:             numberField(c, "lerp"),
			EdgeFadeDistance: numberField(c, "edgeFadeDistance"),
			EdgeFadeMaxAlpha: numberField(c, "edgeFadeMaxAlpha"),
			EdgeLerp:         numberField(c, "edgeLerp"),
		}
	}

	if sq, ok := asMap(root["bigSquare"]); ok {
		doc.BigSquare = &BigSquareDoc{
			X:    numberField(sq, "x"),
			Y:    numberField(sq, "y"),
			Size: numberField(sq, "size"),
		}
	}

	return doc
}

// asMap accepts both the JSON map shape and the one yaml.v3 produces for
// non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func numberField(m map[string]any, key string) *float64 {
	v, ok := asNumber(m[key])
	if !ok {
		return nil
	}
	return &v
}

// numberList returns nil unless every element is a number.
func numberList(v any) []float64 {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(list))
	for _, item := range list {
		n, ok := asNumber(item)
		if !ok {
			return nil
		}
		out = append(out, n)
	}
	return out
}
