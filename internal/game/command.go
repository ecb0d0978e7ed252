package game

import "github.com/sheepshead/backend/internal/deck"

type CommandType string

const (
	CmdState     CommandType = "state"
	CmdJoin      CommandType = "join"
	CmdDeal      CommandType = "deal"
	CmdPick      CommandType = "pick"
	CmdCall      CommandType = "call"
	CmdPlay      CommandType = "play"
	CmdCollect   CommandType = "collect"
	CmdTrick     CommandType = "trick"
	CmdScore     CommandType = "score"
	CmdNextRound CommandType = "nextRound"
	CmdResetAll  CommandType = "resetAll"
)

// Command is the closed set of operations a client can drive on a game.
// Card is only meaningful for CmdCall and CmdPlay.
type Command struct {
	Type     CommandType
	UserID   string
	UserName string
	Card     deck.Card
}

// Apply runs one command against the game. CmdState changes nothing; it
// exists so a client can force a state broadcast.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Type {
	case CmdState:
		return nil
	case CmdJoin:
		return g.SetPlayer(NewPlayer(cmd.UserID, cmd.UserName))
	case CmdDeal:
		return g.DealCards()
	case CmdPick:
		return g.SetPicker(cmd.UserID)
	case CmdCall:
		return g.SetSecretAndOtherTeam(cmd.Card)
	case CmdPlay:
		return g.PlayCard(cmd.UserID, cmd.Card)
	case CmdCollect:
		g.TableReceiveAllCards()
		return nil
	case CmdTrick:
		return g.CalculateHandWinner()
	case CmdScore:
		return g.CalculateScore()
	case CmdNextRound:
		g.ResetGameForNewRound()
		return nil
	case CmdResetAll:
		g.ResetAll()
		return nil
	default:
		return ErrUnsupportedCommand
	}
}
