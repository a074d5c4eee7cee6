package hct

import "math"

// CAM16 color appearance model, reduced to the pieces HCT needs: the
// forward transform (ARGB -> hue/chroma/lightness J) and the inverse
// (J/chroma/hue -> linear sRGB) under standard sRGB viewing
// conditions.

// sRGB (D65) to XYZ.
var srgbToXyz = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

var whitePointD65 = [3]float64{95.047, 100.0, 108.883}

type viewingConditions struct {
	n    float64
	aw   float64
	nbb  float64
	ncb  float64
	c    float64
	nc   float64
	fl   float64
	z    float64
	rgbD [3]float64
}

// vc holds the default viewing conditions: surround 2.0, background
// L* 50, adapting luminance derived from an sRGB-typical display.
var vc = makeViewingConditions()

func makeViewingConditions() viewingConditions {
	adaptingLuminance := 200.0 / math.Pi * yFromLstar(50.0) / 100.0
	const surround = 2.0

	x, y, z := whitePointD65[0], whitePointD65[1], whitePointD65[2]
	rW := x*0.401288 + y*0.650173 + z*-0.051461
	gW := x*-0.250268 + y*1.204414 + z*0.045854
	bW := x*-0.002079 + y*0.048952 + z*0.953127

	f := 0.8 + surround/10.0
	var c float64
	if f >= 0.9 {
		c = lerp(0.59, 0.69, (f-0.9)*10.0)
	} else {
		c = lerp(0.525, 0.59, (f-0.8)*10.0)
	}
	d := f * (1.0 - 1.0/3.6*math.Exp((-adaptingLuminance-42.0)/92.0))
	d = math.Max(0.0, math.Min(1.0, d))

	rgbD := [3]float64{
		d*(100.0/rW) + 1.0 - d,
		d*(100.0/gW) + 1.0 - d,
		d*(100.0/bW) + 1.0 - d,
	}

	k := 1.0 / (5.0*adaptingLuminance + 1.0)
	k4 := k * k * k * k
	k4F := 1.0 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5.0*adaptingLuminance)

	n := yFromLstar(50.0) / whitePointD65[1]
	nbb := 0.725 / math.Pow(n, 0.2)

	rAF := math.Pow(fl*rgbD[0]*rW/100.0, 0.42)
	gAF := math.Pow(fl*rgbD[1]*gW/100.0, 0.42)
	bAF := math.Pow(fl*rgbD[2]*bW/100.0, 0.42)
	rA := 400.0 * rAF / (rAF + 27.13)
	gA := 400.0 * gAF / (gAF + 27.13)
	bA := 400.0 * bAF / (bAF + 27.13)
	aw := (2.0*rA + gA + 0.05*bA) * nbb

	return viewingConditions{
		n:    n,
		aw:   aw,
		nbb:  nbb,
		ncb:  nbb,
		c:    c,
		nc:   f,
		fl:   fl,
		z:    1.48 + math.Sqrt(n),
		rgbD: rgbD,
	}
}

// cam16FromARGB returns the CAM16 hue (degrees), chroma, and
// lightness J of a color.
func cam16FromARGB(argb ARGB) (hue, chroma, j float64) {
	rl := linearized(argb.Red())
	gl := linearized(argb.Green())
	bl := linearized(argb.Blue())

	x := srgbToXyz[0][0]*rl + srgbToXyz[0][1]*gl + srgbToXyz[0][2]*bl
	y := srgbToXyz[1][0]*rl + srgbToXyz[1][1]*gl + srgbToXyz[1][2]*bl
	z := srgbToXyz[2][0]*rl + srgbToXyz[2][1]*gl + srgbToXyz[2][2]*bl

	rC := x*0.401288 + y*0.650173 + z*-0.051461
	gC := x*-0.250268 + y*1.204414 + z*0.045854
	bC := x*-0.002079 + y*0.048952 + z*0.953127

	rD := vc.rgbD[0] * rC
	gD := vc.rgbD[1] * gC
	bD := vc.rgbD[2] * bC

	rAF := math.Pow(vc.fl*math.Abs(rD)/100.0, 0.42)
	gAF := math.Pow(vc.fl*math.Abs(gD)/100.0, 0.42)
	bAF := math.Pow(vc.fl*math.Abs(bD)/100.0, 0.42)
	rA := signum(rD) * 400.0 * rAF / (rAF + 27.13)
	gA := signum(gD) * 400.0 * gAF / (gAF + 27.13)
	bA := signum(bD) * 400.0 * bAF / (bAF + 27.13)

	a := (11.0*rA + -12.0*gA + bA) / 11.0
	b := (rA + gA - 2.0*bA) / 9.0
	u := (20.0*rA + 20.0*gA + 21.0*bA) / 20.0
	p2 := (40.0*rA + 20.0*gA + bA) / 20.0

	hue = SanitizeDegrees(math.Atan2(b, a) * 180.0 / math.Pi)

	ac := p2 * vc.nbb
	j = 100.0 * math.Pow(ac/vc.aw, vc.c*vc.z)

	huePrime := hue
	if huePrime < 20.14 {
		huePrime += 360.0
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180.0+2.0) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vc.nc * vc.ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vc.n), 0.73)
	chroma = alpha * math.Sqrt(j/100.0)
	return hue, chroma, j
}

// cam16ToLinearRGB inverts CAM16 for a (J, chroma, hue) triple,
// returning linear sRGB on a 0..100 scale. Components may fall
// outside [0, 100] when the requested color is out of gamut.
func cam16ToLinearRGB(j, chroma, hueDeg float64) [3]float64 {
	if j <= 0 {
		return [3]float64{0, 0, 0}
	}
	alpha := chroma / math.Sqrt(j/100.0)
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.n), 0.73), 1.0/0.9)

	hRad := hueDeg * math.Pi / 180.0
	eHue := 0.25 * (math.Cos(hRad+2.0) + 3.8)
	ac := vc.aw * math.Pow(j/100.0, 1.0/(vc.c*vc.z))
	p1 := eHue * (50000.0 / 13.0) * vc.nc * vc.ncb
	p2 := ac / vc.nbb

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23.0 * (p2 + 0.305) * t / (23.0*p1 + 11.0*t*hCos + 108.0*t*hSin)
	a := gamma * hCos
	b := gamma * hSin

	rA := (460.0*p2 + 451.0*a + 288.0*b) / 1403.0
	gA := (460.0*p2 - 891.0*a - 261.0*b) / 1403.0
	bA := (460.0*p2 - 220.0*a - 6300.0*b) / 1403.0

	rC := inverseAdapted(rA)
	gC := inverseAdapted(gA)
	bC := inverseAdapted(bA)

	rF := rC / vc.rgbD[0]
	gF := gC / vc.rgbD[1]
	bF := bC / vc.rgbD[2]

	x := 1.86206786*rF - 1.01125463*gF + 0.14918677*bF
	y := 0.38752654*rF + 0.62144744*gF - 0.00897398*bF
	z := -0.01584150*rF - 0.03412294*gF + 1.04996444*bF

	return [3]float64{
		3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z,
		-0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z,
		0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z,
	}
}

func inverseAdapted(adapted float64) float64 {
	base := math.Max(0, 27.13*math.Abs(adapted)/(400.0-math.Abs(adapted)))
	return signum(adapted) * (100.0 / vc.fl) * math.Pow(base, 1.0/0.42)
}
