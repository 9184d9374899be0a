package services

import "math"

// Nutrient rounding rules: calories to whole kcal, macros to one decimal,
// sodium (grams) to three decimals. Applied when scaling an entry and again
// to the final sums of a summary, never twice to the same addend.

func round0(v float64) float64 { return math.Round(v) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
