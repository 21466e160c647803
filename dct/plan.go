package dct

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by transform functions.
var (
	ErrShape  = errors.New("dct: empty or non-rectangular input")
	ErrLength = errors.New("dct: buffer length does not match plan")
)

// minFFTLength is the smallest power-of-two length routed to the FFT backend.
const minFFTLength = 8

// Plan is a reusable orthonormal DCT of a fixed length.
//
// A Plan owns scratch buffers and must not be used from multiple goroutines
// at once. Separate plans are independent.
type Plan struct {
	n int

	// scale holds the orthonormal factors s[0]=sqrt(1/n), s[k]=sqrt(2/n).
	scale    []float64
	invScale []float64
	work     []float64

	// FFT backend (power-of-two lengths).
	fft     *algofft.Plan[complex128]
	twiddle []complex128 // exp(-i*pi*k/(2n))
	buf     []complex128
	spec    []complex128

	// Matrix backend (all other lengths).
	basis *mat.Dense
}

// NewPlan returns a plan for transforms of length n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrShape, n)
	}

	p := &Plan{
		n:        n,
		scale:    make([]float64, n),
		invScale: make([]float64, n),
		work:     make([]float64, n),
	}

	p.scale[0] = math.Sqrt(1 / float64(n))
	for k := 1; k < n; k++ {
		p.scale[k] = math.Sqrt(2 / float64(n))
	}
	for k, s := range p.scale {
		p.invScale[k] = 1 / s
	}

	if n >= minFFTLength && isPowerOf2(n) {
		fft, err := algofft.NewPlan64(n)
		if err == nil {
			p.initFFT(fft)
			return p, nil
		}
	}

	p.initBasis()
	return p, nil
}

func (p *Plan) initFFT(fft *algofft.Plan[complex128]) {
	n := p.n
	p.fft = fft
	p.buf = make([]complex128, n)
	p.spec = make([]complex128, n)
	p.twiddle = make([]complex128, n)
	for k := range p.twiddle {
		p.twiddle[k] = cmplx.Rect(1, -math.Pi*float64(k)/float64(2*n))
	}
}

func (p *Plan) initBasis() {
	n := p.n
	p.basis = mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			p.basis.Set(k, i, p.scale[k]*math.Cos(math.Pi*float64((2*i+1)*k)/float64(2*n)))
		}
	}
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward computes the orthonormal DCT-II of src into dst.
// dst may alias src.
func (p *Plan) Forward(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: got dst=%d src=%d, plan=%d", ErrLength, len(dst), len(src), p.n)
	}

	if p.fft == nil {
		copy(p.work, src)
		out := mat.NewVecDense(p.n, dst)
		out.MulVec(p.basis, mat.NewVecDense(p.n, p.work))
		return nil
	}

	// Even samples ascending, odd samples descending: the n-point FFT of this
	// sequence carries the DCT-II after a quarter-sample phase shift.
	n := p.n
	for i := 0; i < (n+1)/2; i++ {
		p.buf[i] = complex(src[2*i], 0)
	}
	for i := 0; i < n/2; i++ {
		p.buf[n-1-i] = complex(src[2*i+1], 0)
	}

	if err := p.fft.Forward(p.spec, p.buf); err != nil {
		return fmt.Errorf("dct: forward FFT failed: %w", err)
	}

	for k := range dst {
		dst[k] = real(p.twiddle[k] * p.spec[k])
	}
	vecmath.MulBlockInPlace(dst, p.scale)
	return nil
}

// Inverse computes the orthonormal DCT-III of src into dst, undoing Forward.
// dst may alias src.
func (p *Plan) Inverse(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: got dst=%d src=%d, plan=%d", ErrLength, len(dst), len(src), p.n)
	}

	if p.fft == nil {
		copy(p.work, src)
		out := mat.NewVecDense(p.n, dst)
		out.MulVec(p.basis.T(), mat.NewVecDense(p.n, p.work))
		return nil
	}

	n := p.n
	c := p.work
	vecmath.MulBlock(c, src, p.invScale)

	// Rebuild the reordered spectrum V[k] = conj(w[k]) * (C[k] - i*C[n-k]),
	// conjugated so the inverse FFT can run through the forward plan:
	// ifft(V) = conj(fft(conj(V))) / n.
	p.buf[0] = complex(c[0], 0)
	for k := 1; k < n; k++ {
		v := cmplx.Conj(p.twiddle[k]) * complex(c[k], -c[n-k])
		p.buf[k] = cmplx.Conj(v)
	}

	if err := p.fft.Forward(p.spec, p.buf); err != nil {
		return fmt.Errorf("dct: inverse FFT failed: %w", err)
	}

	// The sequence is real, so conj only flips the discarded imaginary part.
	inv := 1 / float64(n)
	for i := 0; i < (n+1)/2; i++ {
		dst[2*i] = real(p.spec[i]) * inv
	}
	for i := 0; i < n/2; i++ {
		dst[2*i+1] = real(p.spec[n-1-i]) * inv
	}
	return nil
}

// Forward returns the orthonormal DCT-II of x.
func Forward(x []float64) ([]float64, error) {
	p, err := NewPlan(len(x))
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	if err := p.Forward(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// Inverse returns the orthonormal DCT-III of c.
func Inverse(c []float64) ([]float64, error) {
	p, err := NewPlan(len(c))
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(c))
	if err := p.Inverse(out, c); err != nil {
		return nil, err
	}
	return out, nil
}

// Energy returns the sum of squared values of x.
func Energy(x []float64) float64 {
	return floats.Dot(x, x)
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
