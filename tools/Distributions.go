package tools

/*
Synthetic single-event "posterior" generators.
Each family draws a fresh random location per call and returns the support
grid alongside a non-negative weight vector scaled by one bin width.
*/

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"gwcomplexity/config"
)

// Produces one synthetic single-event distribution per call
type Generator interface {
	Name() string
	Size() int
	//Whether the accumulated Fisher rank is expected to saturate at Size()
	Saturates() bool
	Generate(rng *rand.Rand) (x []float64, p []float64)
}

// Builds the generator for a family name, validating configuration up front
func NewGenerator(mode string, size int, std float64, sky *SkySimulator) (Generator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d: must be positive", size)
	}
	switch mode {
	case "gaussian", "vonmises", "beta":
		if std <= 0 {
			return nil, fmt.Errorf("invalid std %g: must be positive", std)
		}
	}
	switch mode {
	case "random":
		return &RandomGenerator{size: size}, nil
	case "gaussian":
		return &GaussianGenerator{size: size, std: std}, nil
	case "vonmises":
		return &VonMisesGenerator{size: size, std: std}, nil
	case "beta":
		return &BetaGenerator{size: size, std: std}, nil
	case "skymap":
		if sky == nil {
			return nil, fmt.Errorf("skymap mode requires a sky simulator (supply at least one detector via -ifo)")
		}
		return &SkymapGenerator{size: size, sky: sky}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q: expected one of random, gaussian, vonmises, beta, skymap", mode)
	}
}

// Incoherent baseline: independent uniform weight per support point
type RandomGenerator struct {
	size int
}

func (g *RandomGenerator) Name() string    { return "random" }
func (g *RandomGenerator) Size() int       { return g.size }
func (g *RandomGenerator) Saturates() bool { return true }

func (g *RandomGenerator) Generate(rng *rand.Rand) ([]float64, []float64) {
	dx := 1.0 / float64(g.size)
	x := make([]float64, g.size)
	p := make([]float64, g.size)
	for i := range x {
		x[i] = (float64(i) + 0.5) * dx
		p[i] = rng.Float64() * dx
	}
	return x, p
}

// Gaussian bump with a uniformly random center on the unit interval
type GaussianGenerator struct {
	size int
	std  float64
}

func (g *GaussianGenerator) Name() string { return "gaussian" }
func (g *GaussianGenerator) Size() int    { return g.size }

// No analytic rank asymptote is known for this family
func (g *GaussianGenerator) Saturates() bool { return false }

func (g *GaussianGenerator) Generate(rng *rand.Rand) ([]float64, []float64) {
	dist := distuv.Normal{Mu: rng.Float64(), Sigma: g.std}
	dx := 1.0
	if g.size > 1 {
		dx = 1.0 / float64(g.size-1) //inclusive linspace over [0, 1]
	}
	x := make([]float64, g.size)
	p := make([]float64, g.size)
	for i := range x {
		x[i] = float64(i) * dx
		p[i] = dist.Prob(x[i]) * dx
	}
	return x, p
}

// Circular bump on [-pi, pi); the periodic analogue of the gaussian family
type VonMisesGenerator struct {
	size int
	std  float64
}

func (g *VonMisesGenerator) Name() string    { return "vonmises" }
func (g *VonMisesGenerator) Size() int       { return g.size }
func (g *VonMisesGenerator) Saturates() bool { return true }

// Concentration is the inverse of the variance mapped onto the circle's
// circumference, so the same std gives comparable angular width to the
// gaussian family's linear width. Evaluated in the log domain to survive
// large concentrations. The last periodic point is excluded so the grid
// never counts -pi and pi twice.
func (g *VonMisesGenerator) Generate(rng *rand.Rand) ([]float64, []float64) {
	mu := -math.Pi + 2*math.Pi*rng.Float64()
	s := 2 * math.Pi * g.std
	kappa := 1.0 / (s * s)
	logNorm := math.Log(2*math.Pi) + logBesselI0(kappa)

	dx := 2 * math.Pi / float64(g.size)
	x := make([]float64, g.size)
	p := make([]float64, g.size)
	for i := range x {
		x[i] = -math.Pi + float64(i)*dx
		p[i] = math.Exp(kappa*math.Cos(x[i]-mu)-logNorm) * dx
	}
	return x, p
}

// Beta bump on the open unit interval with a random mean
type BetaGenerator struct {
	size int
	std  float64
}

func (g *BetaGenerator) Name() string    { return "beta" }
func (g *BetaGenerator) Size() int       { return g.size }
func (g *BetaGenerator) Saturates() bool { return true }

// The concentration nu = mean*(1-mean)/var - 1 is only positive while the
// requested variance stays below mean*(1-mean); past that bound the family
// degenerates to a narrow spike via a tiny fixed concentration instead of
// raising a domain error.
func (g *BetaGenerator) Generate(rng *rand.Rand) ([]float64, []float64) {
	mean := openUnit(rng) //Alpha = mean*nu must stay positive
	variance := g.std * g.std
	nu := mean*(1-mean)/variance - 1
	if nu <= 0 {
		nu = config.TinyConcentration
	}
	dist := distuv.Beta{Alpha: mean * nu, Beta: (1 - mean) * nu}

	dx := 1.0 / float64(g.size)
	x := make([]float64, g.size)
	p := make([]float64, g.size)
	for i := range x {
		x[i] = (float64(i) + 0.5) * dx //midpoints keep the grid off 0 and 1
		p[i] = dist.Prob(x[i]) * dx
	}
	return x, p
}

// Simulated gravitational-wave sky posterior, downsampled to the grid size
type SkymapGenerator struct {
	size int
	sky  *SkySimulator
}

func (g *SkymapGenerator) Name() string    { return "skymap" }
func (g *SkymapGenerator) Size() int       { return g.size }
func (g *SkymapGenerator) Saturates() bool { return true }

func (g *SkymapGenerator) Generate(rng *rand.Rand) ([]float64, []float64) {
	m := g.sky.Simulate(rng)
	p := Downsample(m, g.size)
	x := make([]float64, g.size)
	for i := range x {
		x[i] = float64(i) //support is the downsampled pixel index
	}
	return x, p
}

// Uniform draw on the open interval (0, 1)
func openUnit(rng *rand.Rand) float64 {
	for {
		if v := rng.Float64(); v > 0 {
			return v
		}
	}
}

// Modified Bessel function of the first kind, order zero, in the log domain.
// Power series below the switch point, leading asymptotic terms above.
func logBesselI0(x float64) float64 {
	if x < 50 {
		sum := 1.0
		term := 1.0
		for k := 1; k < 128; k++ {
			term *= (x * x) / (4 * float64(k) * float64(k))
			sum += term
			if term < sum*1e-16 {
				break
			}
		}
		return math.Log(sum)
	}
	//I0(x) ~ e^x / sqrt(2*pi*x) * (1 + 1/(8x) + 9/(128x^2) + 225/(3072x^3))
	inv := 1.0 / x
	corr := 1.0 + inv*(1.0/8.0+inv*(9.0/128.0+inv*225.0/3072.0))
	return x - 0.5*math.Log(2*math.Pi*x) + math.Log(corr)
}
