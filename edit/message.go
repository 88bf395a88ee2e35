package edit

import (
	"github.com/pkg/errors"
)

type (
	// Msg is the message union a host sends to drive a session. Each
	// variant is statically shaped; Handle dispatches on the concrete type.
	Msg interface {
		isMsg()
	}

	OpenMsg struct {
		Path string
	}

	StageEditMsg struct {
		Address Address
		VR      string
		Value   string
	}

	StageRemovalMsg struct {
		Address Address
	}

	CommitMsg struct {
		Mode Mode
	}

	DiscardMsg struct{}
)

func (OpenMsg) isMsg()         {}
func (StageEditMsg) isMsg()    {}
func (StageRemovalMsg) isMsg() {}
func (CommitMsg) isMsg()       {}
func (DiscardMsg) isMsg()      {}

// Handle applies one message to the session. Only CommitMsg produces
// results; the staging variants return nil, nil.
func (s *Session) Handle(msg Msg) ([]ChangeResult, error) {
	switch msg := msg.(type) {
	case OpenMsg:
		opened, err := Open(msg.Path)
		if err != nil {
			return nil, errors.Wrap(err, "Handle error")
		}
		*s = *opened
		return nil, nil
	case StageEditMsg:
		s.StageEdit(msg.Address, msg.VR, msg.Value)
		return nil, nil
	case StageRemovalMsg:
		s.StageRemoval(msg.Address)
		return nil, nil
	case CommitMsg:
		return s.Commit(msg.Mode)
	case DiscardMsg:
		s.Discard()
		return nil, nil
	default:
		return nil, errors.Errorf("Handle error: unknown message %T", msg)
	}
}
