package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/youpy/go-wav"
)

const (
	wavBits      = 16
	wavScale     = 1 << (wavBits - 1)
	wavChunkSize = 4096
)

// WriteWAV writes samples as a 16 bit mono wav file. Samples are limited to
// [-1,1].
func WriteWAV(w io.Writer, samples []float64, rate int) error {
	ww := wav.NewWriter(w, uint32(len(samples)), 1, uint32(rate), wavBits)
	chunk := make([]wav.Sample, 0, wavChunkSize)
	for start := 0; start < len(samples); start += wavChunkSize {
		end := start + wavChunkSize
		if end > len(samples) {
			end = len(samples)
		}
		chunk = chunk[:0]
		for _, s := range samples[start:end] {
			v := int(math.Round(clamp(s, -1, 1) * (wavScale - 1)))
			chunk = append(chunk, wav.Sample{Values: [2]int{v, v}})
		}
		if err := ww.WriteSamples(chunk); err != nil {
			return err
		}
	}
	return nil
}

// wavSource is what the riff reader underneath go-wav needs.
type wavSource interface {
	io.Reader
	io.ReaderAt
}

// ReadWAV reads the first channel of a 16 bit wav file and returns its samples
// and sample rate.
func ReadWAV(r wavSource) ([]float64, int, error) {
	wr := wav.NewReader(r)
	format, err := wr.Format()
	if err != nil {
		return nil, 0, err
	}
	if format.BitsPerSample != wavBits {
		return nil, 0, fmt.Errorf("unsupported bit depth: %d", format.BitsPerSample)
	}
	var buf []float64
	for {
		samples, err := wr.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		for _, sample := range samples {
			buf = append(buf, float64(wr.IntValue(sample, 0))/wavScale)
		}
	}
	return buf, int(format.SampleRate), nil
}

// RenderWAV renders n samples from e into a new wav file at path.
func RenderWAV(e *Engine, path string, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	samples := make([]float64, n)
	e.Render(samples)
	if err := WriteWAV(f, samples, int(e.Clock().Rate)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadWAV reads a wav file from disk.
func LoadWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadWAV(f)
}

// Compare returns the index of the first sample where a and b differ by more
// than tol, or -1 if they match. Slices of different length differ at the
// end of the shorter one.
func Compare(a, b []float64, tol float64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
