// settings.go
package config

// Default settings for the Fisher-matrix complexity study
const (
	/**
	[[SWEEP SETTINGS]]
	*/

	DefaultSize        = 50          //Support points per single-event distribution
	DefaultNeventRange = "1,1000,10" //Event counts to sweep: start,stop,step (stop exclusive)
	DefaultNtrials     = 100         //Independent trials per event count
	DefaultStd         = 0.1         //Spread parameter for the bump families

	//Beta family: concentration used when the requested variance meets or
	//exceeds the bound attainable at the drawn mean
	TinyConcentration = 1e-3

	/**
	[[SKY SIMULATION SETTINGS]]
	*/

	DefaultNside    = 64                      //Working sky resolution; npix = 12*nside^2
	DefaultGPSRange = "1126051217,1137254417" //O1 observing run

	TimingUncertainty = 1e-4        //Width of the time-delay rings (seconds)
	SiderealDay       = 86164.0905  //Seconds per Earth rotation
	SpeedOfLight      = 299792458.0 //m/s

	/**
	[[ARTIFACT SETTINGS]]
	*/

	//All artifacts share this filename stem
	BasePrefix = "investigate-complexity"

	//Filename templates
	SummaryPlotTemplate = "%s%s-%s-size%d.png"                  //prefix, tag, kind, size
	NeventPlotTemplate  = "%s%s-%s-size%d-nevent%d.png"         //prefix, tag, kind, size, nevent
	TrialPlotTemplate   = "%s%s-%s-size%d-nevent%d-trial%d.png" //prefix, tag, kind, size, nevent, trial
	SummaryJSONTemplate = "%s%s-summary-size%d.json"            //prefix, tag, size
	SummaryCSVTemplate  = "%s%s-summary-size%d.csv"             //prefix, tag, size
	RunLogTemplate      = "%s%s-run.log"                        //prefix, tag

	//Histogram bins for the eigenvalue diagnostic
	EigHistogramBins = 50
)
