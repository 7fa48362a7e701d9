package units

// Physical constants in the toolkit's unit system (µeV, GHz, K).
const (
	// PlanckGHz is Planck's constant expressed in µeV per GHz.
	// Multiplying a frequency in GHz by PlanckGHz yields an energy in µeV.
	PlanckGHz = 4.135667696

	// Boltzmann is Boltzmann's constant expressed in µeV per K.
	Boltzmann = 86.17333262

	// MilliKelvin converts mK to K.
	MilliKelvin = 1e-3
)

// ThermalEnergy returns kT in µeV for an effective electron temperature
// given in K. Typical dilution-refrigerator electron temperatures are a
// few tens of mK; 75 mK gives kT ≈ 6.463 µeV.
func ThermalEnergy(temperatureK float64) float64 {
	return Boltzmann * temperatureK
}

// FrequencyToEnergy converts a frequency in GHz to an energy in µeV.
func FrequencyToEnergy(freqGHz float64) float64 {
	return PlanckGHz * freqGHz
}

// EnergyToFrequency converts an energy in µeV to a frequency in GHz.
func EnergyToFrequency(energyUEV float64) float64 {
	return energyUEV / PlanckGHz
}
