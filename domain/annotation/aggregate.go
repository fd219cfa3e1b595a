package annotation

// Status summarises a plate's character condition.
type Status int

const (
	StatusIntact Status = iota
	StatusBroken
	StatusUnreadable
)

func (s Status) String() string {
	switch s {
	case StatusIntact:
		return "Intact"
	case StatusBroken:
		return "Broken"
	case StatusUnreadable:
		return "Cannot read image"
	default:
		return "unknown"
	}
}

// StatusPolicy names the classes counted as intact and broken characters.
type StatusPolicy struct {
	Intact ClassID
	Broken ClassID
}

// DefaultPolicy matches the plate/character_intact/character_broken class table.
var DefaultPolicy = StatusPolicy{Intact: ClassCharacterIntact, Broken: ClassCharacterBroken}

// Tally is the per-class count of box shapes and the derived status.
type Tally struct {
	Counts map[ClassID]int
	Status Status
}

// Intact returns the intact character count under p.
func (t Tally) Intact(p StatusPolicy) int { return t.Counts[p.Intact] }

// Broken returns the broken character count under p.
func (t Tally) Broken(p StatusPolicy) int { return t.Counts[p.Broken] }

// Aggregate counts box shapes per class. The status is Broken when at least one broken
// character box is present and Intact otherwise, so a plate with no character boxes at
// all reports Intact. Point shapes are not counted.
func Aggregate(shapes []Shape, p StatusPolicy) Tally {
	t := Tally{Counts: map[ClassID]int{}, Status: StatusIntact}
	for _, s := range shapes {
		if s.Kind != KindBox {
			continue
		}
		t.Counts[s.Class]++
	}
	if t.Counts[p.Broken] > 0 {
		t.Status = StatusBroken
	}
	return t
}
