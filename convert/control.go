package convert

import (
	"sync"

	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/ros"
)

// ControlCommand is a velocity command for the wheelchair.
type ControlCommand struct {
	Linear  float64
	Angular float64
	// Period is the time since the previous command's stamp.
	Period ros.Duration
}

// ControlTracker turns the stream of control messages into commands. The
// first message only primes the tracker. Safe for concurrent use.
type ControlTracker struct {
	mu   sync.Mutex
	last ros.Time
}

// Update records msg and returns the command it carries. ok is false until a
// previous stamp is known.
func (c *ControlTracker) Update(msg geometry_msgs.TwistStamped) (cmd ControlCommand, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stamp := msg.Header.Stamp
	if c.last.IsValid() {
		cmd = ControlCommand{
			Linear:  msg.Twist.Linear.X,
			Angular: msg.Twist.Angular.Z,
			Period:  stamp.Diff(c.last),
		}
		ok = true
		logger.Debugf("control command %.3f m/s %.3f rad/s, period %v", cmd.Linear, cmd.Angular, cmd.Period.ToGoDuration())
	}
	c.last = stamp
	return cmd, ok
}

// Reset forgets the previous stamp.
func (c *ControlTracker) Reset() {
	c.mu.Lock()
	c.last = ros.Time{}
	c.mu.Unlock()
}
