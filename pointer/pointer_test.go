package pointer

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestDry(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	var p Pointer = &Dry{Logger: logger}
	assert.NoError(t, p.Move(3, 4))
	assert.NoError(t, p.Click(Once))
	assert.NoError(t, p.Click(Down))

	d := p.(*Dry)
	assert.Equal(t, 1, d.Moves)
	assert.Equal(t, 2, d.Clicks)
	assert.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, 3, hook.AllEntries()[0].Data["x"])
	assert.Equal(t, Down, hook.LastEntry().Data["click"])
}

func TestDryWithoutLogger(t *testing.T) {
	d := new(Dry)
	assert.NoError(t, d.Move(0, 0))
	assert.NoError(t, d.Click(Up))
	assert.Equal(t, 1, d.Clicks)
}

func TestClickString(t *testing.T) {
	assert.Equal(t, "once", Once.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "Click(7)", Click(7).String())
}
