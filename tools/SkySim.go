package tools

/*
Simulated sky posteriors for the skymap family.
Builds a coarse stand-in for a triangulated gravitational-wave sky
localization: for a random source direction and arrival time, each detector
pair contributes a Gaussian time-delay ring, and the product of rings over
all pairs is the posterior on a 12*nside^2 pixel grid. A single-detector
network has no timing baseline and falls back to a broad alignment-weighted
map. Maps are normalized to unit probability mass.
*/

import (
	"fmt"
	"math"
	"math/rand"

	"gwcomplexity/config"
)

// Geocentric detector positions in meters
var detectorPositions = map[string][3]float64{
	"H1": {-2.16141e6, -3.83470e6, 4.60035e6}, //LIGO Hanford
	"L1": {-7.42760e4, -5.49628e6, 3.22426e6}, //LIGO Livingston
	"V1": {4.54637e6, 8.42990e5, 4.37858e6},   //Virgo
	"K1": {-3.77709e6, 3.48414e6, 3.76530e6},  //KAGRA
}

type SkySimulator struct {
	names     []string
	positions [][3]float64
	gpsStart  float64
	gpsEnd    float64
	nside     int
	npix      int
	grid      [][3]float64 //unit pixel directions, fixed per simulator
}

// Constructor; validates the detector network and time range up front
func NewSkySimulator(ifos []string, gpsStart float64, gpsEnd float64, nside int) (*SkySimulator, error) {
	if len(ifos) == 0 {
		return nil, fmt.Errorf("skymap simulation requires at least one detector (-ifo)")
	}
	if nside <= 0 {
		return nil, fmt.Errorf("invalid nside %d: must be positive", nside)
	}
	if gpsEnd < gpsStart {
		return nil, fmt.Errorf("invalid gps range [%f, %f]: end precedes start", gpsStart, gpsEnd)
	}

	s := &SkySimulator{
		gpsStart: gpsStart,
		gpsEnd:   gpsEnd,
		nside:    nside,
		npix:     12 * nside * nside,
	}
	for _, name := range ifos {
		pos, ok := detectorPositions[name]
		if !ok {
			return nil, fmt.Errorf("unknown detector %q: expected one of H1, L1, V1, K1", name)
		}
		s.names = append(s.names, name)
		s.positions = append(s.positions, pos)
	}

	//Fibonacci-sphere pixelization: near-equal-area, deterministic
	s.grid = make([][3]float64, s.npix)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range s.grid {
		z := 1 - 2*(float64(i)+0.5)/float64(s.npix)
		r := math.Sqrt(1 - z*z)
		phi := float64(i) * golden
		s.grid[i] = [3]float64{r * math.Cos(phi), r * math.Sin(phi), z}
	}
	return s, nil
}

func (s *SkySimulator) Npix() int { return s.npix }

// Draws one simulated sky posterior: random source direction, random
// arrival time within the configured GPS range, detector network rotated
// to the sidereal frame for that time
func (s *SkySimulator) Simulate(rng *rand.Rand) []float64 {
	src := randomDirection(rng)
	gps := s.gpsStart + rng.Float64()*(s.gpsEnd-s.gpsStart)
	positions := s.rotatedPositions(gps)

	logm := make([]float64, s.npix)
	if len(positions) == 1 {
		//No timing baseline: broad weight favoring alignment with the source
		for i, n := range s.grid {
			a := dot(n, src)
			logm[i] = a //exp(cos angle), a gentle single-detector prior
		}
	} else {
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				baseline := [3]float64{
					positions[i][0] - positions[j][0],
					positions[i][1] - positions[j][1],
					positions[i][2] - positions[j][2],
				}
				tauSrc := dot(baseline, src) / config.SpeedOfLight
				sigma := config.TimingUncertainty
				for pix, n := range s.grid {
					tau := dot(baseline, n) / config.SpeedOfLight
					d := (tau - tauSrc) / sigma
					logm[pix] -= 0.5 * d * d
				}
			}
		}
	}

	//Normalize in the log domain so narrow rings never underflow to zero
	maxLog := logm[0]
	for _, v := range logm[1:] {
		if v > maxLog {
			maxLog = v
		}
	}
	m := make([]float64, s.npix)
	total := 0.0
	for i, v := range logm {
		m[i] = math.Exp(v - maxLog)
		total += m[i]
	}
	for i := range m {
		m[i] /= total
	}
	return m
}

// Rebins a pixel map to nbin bins by summing the mass of contiguous pixel
// chunks; total probability mass is preserved exactly
func Downsample(m []float64, nbin int) []float64 {
	out := make([]float64, nbin)
	n := len(m)
	for i, v := range m {
		out[i*nbin/n] += v
	}
	return out
}

// Detector positions spun about the rotation axis to the sidereal frame
func (s *SkySimulator) rotatedPositions(gps float64) [][3]float64 {
	angle := 2 * math.Pi * math.Mod(gps, config.SiderealDay) / config.SiderealDay
	sin, cos := math.Sin(angle), math.Cos(angle)
	out := make([][3]float64, len(s.positions))
	for i, p := range s.positions {
		out[i] = [3]float64{
			cos*p[0] - sin*p[1],
			sin*p[0] + cos*p[1],
			p[2],
		}
	}
	return out
}

// Uniform random direction on the unit sphere
func randomDirection(rng *rand.Rand) [3]float64 {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)
	return [3]float64{r * math.Cos(phi), r * math.Sin(phi), z}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
