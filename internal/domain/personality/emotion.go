package personality

type Channel string

const (
	ChannelHappiness   Channel = "happiness"
	ChannelFrustration Channel = "frustration"
	ChannelAnxiety     Channel = "anxiety"
	ChannelSecurity    Channel = "security"
)

func Channels() []Channel {
	return []Channel{ChannelHappiness, ChannelFrustration, ChannelAnxiety, ChannelSecurity}
}

const (
	HappinessFloor = 30
	SecurityFloor  = 20

	emotionDecayBlockMinutes = 10
)

// floor keeps the pet from collapsing emotionally.
func (c Channel) floor() int {
	switch c {
	case ChannelHappiness:
		return HappinessFloor
	case ChannelSecurity:
		return SecurityFloor
	default:
		return TraitMin
	}
}

type EmotionalState struct {
	Happiness   int `json:"happiness"`
	Frustration int `json:"frustration"`
	Anxiety     int `json:"anxiety"`
	Security    int `json:"security"`
}

func NewEmotionalState() EmotionalState {
	return EmotionalState{Happiness: 70, Frustration: 20, Anxiety: 20, Security: 70}
}

func (e *EmotionalState) field(c Channel) *int {
	switch c {
	case ChannelHappiness:
		return &e.Happiness
	case ChannelFrustration:
		return &e.Frustration
	case ChannelAnxiety:
		return &e.Anxiety
	case ChannelSecurity:
		return &e.Security
	}
	return nil
}

func (e EmotionalState) Get(c Channel) int {
	if f := e.field(c); f != nil {
		return *f
	}
	return 0
}

func (e EmotionalState) Valid() bool {
	for _, c := range Channels() {
		if v := e.Get(c); v < c.floor() || v > TraitMax {
			return false
		}
	}
	return true
}

// Apply adds each channel delta scaled by the temperament's reaction
// intensity, clamped to the channel floor and 100.
func (e EmotionalState) Apply(deltas map[Channel]int, temperament Temperament) EmotionalState {
	out := e
	mod := temperament.IntensityModifier()
	for _, c := range Channels() {
		delta, ok := deltas[c]
		if !ok {
			continue
		}
		f := out.field(c)
		*f = clamp(*f+roundHalfUp(float64(delta)*mod), c.floor(), TraitMax)
	}
	return out
}

// DecayBlocks is the number of whole decay steps in minutes.
func DecayBlocks(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes / emotionDecayBlockMinutes
}

// Decay drifts the mood toward calm over minutes of elapsed time.
func (e EmotionalState) Decay(minutes int) EmotionalState {
	rate := DecayBlocks(minutes)
	if rate <= 0 {
		return e
	}
	return EmotionalState{
		Happiness:   clamp(e.Happiness-rate, HappinessFloor, TraitMax),
		Frustration: clamp(e.Frustration-rate*2, TraitMin, TraitMax),
		Anxiety:     clamp(e.Anxiety-rate, TraitMin, TraitMax),
		Security:    clamp(e.Security-rate/2, SecurityFloor, TraitMax),
	}
}

// Receptivity scales how much an action can shape personality right now.
func (e EmotionalState) Receptivity() float64 {
	mod := 1.0
	if e.Frustration > 60 {
		mod *= 0.7
	}
	if e.Happiness > 70 {
		mod *= 1.2
	}
	if e.Anxiety > 60 {
		mod *= 0.8
	}
	return mod
}

// Intensity is how far the mood sits from neutral, used for memory salience.
func (e EmotionalState) Intensity() int {
	return abs(e.Happiness-50) + abs(e.Security-50)
}

type Mood string

const (
	MoodRadiant    Mood = "radiant"
	MoodHappy      Mood = "happy"
	MoodFrustrated Mood = "frustrated"
	MoodAnxious    Mood = "anxious"
	MoodInsecure   Mood = "insecure"
	MoodSad        Mood = "sad"
	MoodNeutral    Mood = "neutral"
)

func (e EmotionalState) Mood() Mood {
	switch {
	case e.Happiness > 80 && e.Frustration < 30:
		return MoodRadiant
	case e.Happiness > 60:
		return MoodHappy
	case e.Frustration > 70:
		return MoodFrustrated
	case e.Anxiety > 70:
		return MoodAnxious
	case e.Security < 30:
		return MoodInsecure
	case e.Happiness < 40:
		return MoodSad
	default:
		return MoodNeutral
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
