package growth

import "time"

// WholeMinutes floors the elapsed time between from and to. Negative spans are 0.
func WholeMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// ProcessTime settles the time elapsed since the pet was last active.
// Sleep is measured from SleepStartedAt; the part of the span before the pet
// fell asleep is awake time. Sleep regains energy, awake time tires. It returns
// the whole minutes that were settled.
func ProcessTime(pet Pet, metrics Metrics, now time.Time) (Pet, Metrics, int) {
	delta := WholeMinutes(pet.LastActiveAt, now)
	if delta <= 0 {
		return pet, metrics, 0
	}

	outPet := pet
	outMetrics := metrics.clone()
	outPet.AgeMinutes += delta

	asleep := 0
	if pet.Sleeping {
		asleep = delta
		if pet.SleepStartedAt != nil {
			asleep = min(delta, WholeMinutes(*pet.SleepStartedAt, now))
		}
		// The open sleep segment restarts here so EndSleep only adds the remainder.
		start := now
		outPet.SleepStartedAt = &start
	}
	awake := delta - asleep

	outMetrics.AwakeMinutes += awake
	outMetrics.SleepMinutes += asleep
	outPet.Energy = max(0, outPet.Energy-awake/AwakeMinutesPerDrain)
	outPet.Energy = min(MaxEnergy, outPet.Energy+asleep/SleepMinutesPerEnergy)

	outPet.LastActiveAt = now
	return outPet, outMetrics, delta
}

func StartSleep(pet Pet, now time.Time) Pet {
	out := pet
	start := now
	out.Sleeping = true
	out.SleepStartedAt = &start
	return out
}

// EndSleep closes the open sleep segment and banks it as sleep minutes.
func EndSleep(pet Pet, metrics Metrics, now time.Time) (Pet, Metrics) {
	out := pet
	out.Sleeping = false
	if !pet.Sleeping || pet.SleepStartedAt == nil {
		out.SleepStartedAt = nil
		return out, metrics
	}

	outMetrics := metrics.clone()
	outMetrics.SleepMinutes += WholeMinutes(*pet.SleepStartedAt, now)
	out.SleepStartedAt = nil
	return out, outMetrics
}
