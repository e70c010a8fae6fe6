package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"namestat/internal/errors"
)

const (
	cloudWidth   = 1600
	cloudHeight  = 900
	cloudPadding = 12
	minFontSize  = 28
	maxFontSize  = 150
)

// cloudPalette approximates the viridis colormap used for the original cloud
var cloudPalette = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

type wordWeight struct {
	Word  string
	Count int
}

type wordBox struct {
	Word string
	Size float64
	X    float64 // top-left
	Y    float64
	W    float64
	H    float64
}

// WordCloud renders a word cloud of the roster names, sized by how often
// each name occurs
func WordCloud(names []string, path string) error {
	weights := nameWeights(names)
	if len(weights) == 0 {
		return errors.InvalidInput("cannot render a word cloud for an empty roster")
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return errors.RenderError(path, err)
	}
	faces := make(map[int]font.Face)
	faceFor := func(size float64) (font.Face, error) {
		key := int(size)
		if face, ok := faces[key]; ok {
			return face, nil
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    float64(key),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, err
		}
		faces[key] = face
		return face, nil
	}

	dc := gg.NewContext(cloudWidth, cloudHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	var faceErr error
	measure := func(word string, size float64) (w, h float64) {
		face, err := faceFor(size)
		if err != nil {
			faceErr = err
			return 0, 0
		}
		dc.SetFontFace(face)
		w, _ = dc.MeasureString(word)
		// Reserve the nominal line height so descenders don't collide
		return w, size * 1.2
	}

	boxes := layoutWords(weights, cloudWidth, cloudHeight, measure)
	if faceErr != nil {
		return errors.RenderError(path, faceErr)
	}

	for i, box := range boxes {
		face, err := faceFor(box.Size)
		if err != nil {
			return errors.RenderError(path, err)
		}
		dc.SetFontFace(face)
		dc.SetColor(cloudPalette[i%len(cloudPalette)])
		dc.DrawStringAnchored(box.Word, box.X+box.W/2, box.Y+box.H/2, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}

// nameWeights counts distinct names, ordered by count descending then name
func nameWeights(names []string) []wordWeight {
	counts := make(map[string]int)
	for _, name := range names {
		if name != "" {
			counts[name]++
		}
	}
	weights := make([]wordWeight, 0, len(counts))
	for word, count := range counts {
		weights = append(weights, wordWeight{Word: word, Count: count})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Count != weights[j].Count {
			return weights[i].Count > weights[j].Count
		}
		return weights[i].Word < weights[j].Word
	})
	return weights
}

// layoutWords places words on an outward spiral from the canvas center,
// skipping positions that overlap already-placed words. Words that cannot be
// placed within the step limit are dropped. The measure callback reports the
// rendered extent of a word at a font size.
func layoutWords(weights []wordWeight, width, height float64, measure func(word string, size float64) (w, h float64)) []wordBox {
	if len(weights) == 0 {
		return nil
	}

	minCount := weights[len(weights)-1].Count
	maxCount := weights[0].Count

	var placed []wordBox
	for _, weight := range weights {
		size := fontSizeFor(weight.Count, minCount, maxCount)
		w, h := measure(weight.Word, size)
		if w <= 0 || h <= 0 {
			continue
		}

		cx, cy := width/2, height/2
		theta := 0.0
		for step := 0; step < 5000; step++ {
			radius := 3 * theta
			x := cx + radius*math.Cos(theta) - w/2
			y := cy + radius*math.Sin(theta) - h/2
			theta += 0.18

			if x < cloudPadding || y < cloudPadding || x+w > width-cloudPadding || y+h > height-cloudPadding {
				continue
			}
			candidate := wordBox{Word: weight.Word, Size: size, X: x, Y: y, W: w, H: h}
			if !overlapsAny(candidate, placed) {
				placed = append(placed, candidate)
				break
			}
		}
	}
	return placed
}

func fontSizeFor(count, minCount, maxCount int) float64 {
	if maxCount == minCount {
		return (minFontSize + maxFontSize) / 2
	}
	share := float64(count-minCount) / float64(maxCount-minCount)
	return minFontSize + share*(maxFontSize-minFontSize)
}

func overlapsAny(box wordBox, placed []wordBox) bool {
	for _, other := range placed {
		if box.X < other.X+other.W && other.X < box.X+box.W &&
			box.Y < other.Y+other.H && other.Y < box.Y+box.H {
			return true
		}
	}
	return false
}
