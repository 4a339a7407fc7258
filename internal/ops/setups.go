package ops

import (
	"slices"

	"github.com/ewinters/slate/internal/fountain"
)

// SetupsInput contains parameters for the Setups operation.
type SetupsInput struct {
	InputPath string
}

// SetupItem describes one camera setup letter found in the document.
type SetupItem struct {
	Letter string `json:"letter"`

	// Descriptions lists the distinct description variants seen for this
	// letter, in first-appearance order. More than one entry usually means
	// a typo in a repeated marker.
	Descriptions []string `json:"descriptions"`

	// Segments is the number of segments shot under this letter.
	Segments int `json:"segments"`

	// Scenes lists the scene indexes the letter appears in, ascending.
	Scenes []int `json:"scenes"`
}

// SetupsOutput contains the result of the Setups operation.
type SetupsOutput struct {
	InputPath string      `json:"input_path,omitempty"`
	Setups    []SetupItem `json:"setups"`
	Stats     Stats       `json:"stats"`
}

// Setups inventories the camera setups found in the input, in
// first-appearance order. Read-only; nothing is written.
func Setups(input SetupsInput) (*SetupsOutput, error) {
	segments, err := ScanFile(input.InputPath)
	if err != nil {
		return nil, err
	}

	out := InventorySetups(segments)
	out.InputPath = input.InputPath
	return out, nil
}

// InventorySetups builds the setup inventory from an already-scanned
// segment sequence. Shared by the file-based operation and the MCP tool.
func InventorySetups(segments []fountain.Segment) *SetupsOutput {
	var letters []string
	items := make(map[string]*SetupItem)

	for _, seg := range segments {
		if !seg.Attributed() {
			continue
		}
		item, ok := items[seg.SetupLetter]
		if !ok {
			item = &SetupItem{Letter: seg.SetupLetter}
			items[seg.SetupLetter] = item
			letters = append(letters, seg.SetupLetter)
		}
		item.Segments++
		if !slices.Contains(item.Descriptions, seg.SetupDescription) {
			item.Descriptions = append(item.Descriptions, seg.SetupDescription)
		}
		if !slices.Contains(item.Scenes, seg.SceneIndex) {
			item.Scenes = append(item.Scenes, seg.SceneIndex)
		}
	}

	setups := make([]SetupItem, 0, len(letters))
	for _, letter := range letters {
		slices.Sort(items[letter].Scenes)
		setups = append(setups, *items[letter])
	}

	return &SetupsOutput{
		Setups: setups,
		Stats:  Summarize(segments),
	}
}
