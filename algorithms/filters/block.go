package filters

import "fmt"

// SigmaLookup returns the strength of bin (t, y, x) of the half-spectrum
type SigmaLookup interface {
	At(t, y, x int) float64
}

// FilterBlock applies p in place to one transformed block laid out
// row-major over (t, y, x) with x in [0, blockSize/2+1). Only the stored
// half of a real-input spectrum is touched; its conjugate mirror is
// implied and shares the gain.
func FilterBlock(block []complex128, radius, blockSize int, sigmas SigmaLookup, p Params) error {
	if err := p.Type.Validate(); err != nil {
		return err
	}

	temporalSize := 2*radius + 1
	halfWidth := blockSize/2 + 1
	if want := temporalSize * blockSize * halfWidth; len(block) != want {
		return fmt.Errorf("block length (%d) doesn't match half-spectrum size (%d)", len(block), want)
	}

	i := 0
	for t := range temporalSize {
		for y := range blockSize {
			for x := range halfWidth {
				block[i] = p.Apply(block[i], sigmas.At(t, y, x))
				i++
			}
		}
	}

	return nil
}
