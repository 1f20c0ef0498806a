package bgammon

type Player struct {
	Name string
	Side Side // A moves first on the track, B second. See HomeRange.
}

func NewPlayer(name string, side Side) Player {
	return Player{
		Name: name,
		Side: side,
	}
}

// OnBoard returns the number of the player's checkers on the track.
func (p Player) OnBoard(b *Board) int {
	return b.PointCount(p.Side)
}

// OnBar returns the number of the player's checkers waiting on the bar.
func (p Player) OnBar(b *Board) int {
	return b.BarCount(p.Side)
}

// BorneOff returns the number of the player's checkers borne off.
func (p Player) BorneOff(b *Board) int {
	return b.OffCount(p.Side)
}

// PlayerStatus summarizes where a player's checkers are.
type PlayerStatus struct {
	Name     string
	Side     Side
	Symbol   string
	OnBoard  int
	OnBar    int
	BorneOff int
	Total    int
}

func (p Player) Status(b *Board) PlayerStatus {
	s := PlayerStatus{
		Name:     p.Name,
		Side:     p.Side,
		Symbol:   p.Side.Symbol(),
		OnBoard:  p.OnBoard(b),
		OnBar:    p.OnBar(b),
		BorneOff: p.BorneOff(b),
	}
	s.Total = s.OnBoard + s.OnBar + s.BorneOff
	return s
}
