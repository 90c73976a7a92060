package domain

import "strconv"

// Language code understood by the Google APIs (e.g. "en", "nl", "zh-CN").
type Language string

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

type SpeedUnits string

const (
	SpeedUnitsKPH SpeedUnits = "KPH"
	SpeedUnitsMPH SpeedUnits = "MPH"
)

type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

type Avoid string

const (
	AvoidTolls    Avoid = "tolls"
	AvoidHighways Avoid = "highways"
	AvoidFerries  Avoid = "ferries"
	AvoidIndoor   Avoid = "indoor"
)

type TrafficModel string

const (
	TrafficModelBestGuess   TrafficModel = "best_guess"
	TrafficModelPessimistic TrafficModel = "pessimistic"
	TrafficModelOptimistic  TrafficModel = "optimistic"
)

func formatInt(n int) string { return strconv.Itoa(n) }
