package spatial

import "math"

// RadToDeg converts radians to degrees when used as a factor.
const RadToDeg = 57.29577951308232

// DegToRad converts degrees to radians when used as a factor.
const DegToRad = math.Pi / 180
