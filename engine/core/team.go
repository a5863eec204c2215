package core

// Team identifies one of the two sides. The simulation knows only
// ally/enemy; display labels (blue/red) belong to the render boundary.
type Team uint8

const (
	TeamAlly Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamAlly {
		return "ally"
	}
	return "enemy"
}

// Opponent returns the opposing team
func (t Team) Opponent() Team {
	if t == TeamAlly {
		return TeamEnemy
	}
	return TeamAlly
}

// Teams lists both sides in a fixed order
func Teams() [2]Team {
	return [2]Team{TeamAlly, TeamEnemy}
}
