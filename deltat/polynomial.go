package deltat

import (
	"math"
)

// segment is one piece of the polynomial model, covering years up to
// and including through
type segment struct {
	through int
	eval    func(y float64) float64
}

// segments are the Espenak and Meeus fits to historical delta T,
// ordered by the last year each one covers.
//
// https://eclipse.gsfc.nasa.gov/SEcat5/deltatpoly.html
var segments = []segment{
	{-501, longTerm},
	{500, func(y float64) float64 {
		u := y / 100
		return 10583.6 -
			1014.41*y/100 +
			33.78311*math.Pow(u, 2) -
			5.952053*math.Pow(u, 3) -
			0.1798452*math.Pow(u, 4) +
			0.022174192*math.Pow(u, 5) +
			0.0090316521*math.Pow(u, 6)
	}},
	{1600, func(y float64) float64 {
		u := (y - 1000) / 100
		return 1574.2 -
			556.01*(y-1000)/100 +
			71.23472*math.Pow(u, 2) +
			0.319781*math.Pow(u, 3) -
			0.8503463*math.Pow(u, 4) -
			0.005050998*math.Pow(u, 5) +
			0.0083572073*math.Pow(u, 6)
	}},
	// also bridges 1600 to 1620, before telescopic observation
	{1700, func(y float64) float64 {
		t := y - 1600
		return 120 - 0.9808*t - 0.01532*math.Pow(t, 2) + math.Pow(t, 3)/7129
	}},
	{1800, func(y float64) float64 {
		t := y - 1700
		return 8.83 +
			0.1603*t -
			0.0059285*math.Pow(t, 2) +
			0.00013336*math.Pow(t, 3) -
			math.Pow(t, 4)/1174000
	}},
	{1860, func(y float64) float64 {
		t := y - 1800
		return 13.72 -
			0.332447*t +
			0.0068612*math.Pow(t, 2) +
			0.0041116*math.Pow(t, 3) -
			0.00037436*math.Pow(t, 4) +
			0.0000121272*math.Pow(t, 5) -
			0.0000001699*math.Pow(t, 6) +
			0.000000000875*math.Pow(t, 7)
	}},
	{1900, func(y float64) float64 {
		t := y - 1860
		return 7.62 +
			0.5737*t -
			0.251754*math.Pow(t, 2) +
			0.01680668*math.Pow(t, 3) -
			0.0004473624*math.Pow(t, 4) +
			math.Pow(t, 5)/233174
	}},
	{1920, func(y float64) float64 {
		t := y - 1900
		return -2.79 +
			1.494119*t -
			0.0598939*math.Pow(t, 2) +
			0.0061966*math.Pow(t, 3) -
			0.000197*math.Pow(t, 4)
	}},
	{1941, func(y float64) float64 {
		t := y - 1920
		return 21.2 + 0.84493*t - 0.0761*math.Pow(t, 2) + 0.0020936*math.Pow(t, 3)
	}},
	{1961, func(y float64) float64 {
		t := y - 1950
		return 29.07 + 0.407*t - math.Pow(t, 2)/233 + math.Pow(t, 3)/2547
	}},
	{1986, func(y float64) float64 {
		t := y - 1975
		return 45.45 + 1.067*t - math.Pow(t, 2)/260 - math.Pow(t, 3)/718
	}},
	{2005, func(y float64) float64 {
		t := y - 2000
		return 63.86 +
			0.3345*t -
			0.060374*math.Pow(t, 2) +
			0.0017275*math.Pow(t, 3) +
			0.000651814*math.Pow(t, 4) +
			0.00002373599*math.Pow(t, 5)
	}},
	{2050, func(y float64) float64 {
		t := y - 2000
		return 62.92 + 0.32217*t + 0.005589*math.Pow(t, 2)
	}},
	{2150, func(y float64) float64 {
		return longTerm(y) - 0.5628*(2150-y)
	}},
	{math.MaxInt, longTerm},
}

// longTerm is the parabola fitted to ancient eclipse records, used
// outside every shorter fit
func longTerm(y float64) float64 {
	u := (y - 1820) / 100
	return -20 + 32*math.Pow(u, 2)
}

// Polynomial estimates delta T in seconds for year from the piecewise
// model alone, ignoring any table
func Polynomial(year int) float64 {
	for _, s := range segments {
		if year <= s.through {
			return s.eval(float64(year))
		}
	}

	// unreachable, the last segment is unbounded
	return longTerm(float64(year))
}
