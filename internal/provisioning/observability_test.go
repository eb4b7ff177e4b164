package provisioning

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestConsoleObserver_Printf(t *testing.T) {
	buf := captureLog(t)

	o := NewConsoleObserver()
	o.Printf("creating %s", "vpc-123")

	assert.Contains(t, buf.String(), "creating vpc-123")
}

func TestConsoleObserver_Event(t *testing.T) {
	buf := captureLog(t)

	o := NewConsoleObserver()
	o.Event(Event{
		Type:      EventResourceCreated,
		Phase:     "create",
		Resource:  "vpc-123",
		Message:   "VPC created",
		Timestamp: time.Now(),
	})

	out := buf.String()
	assert.Contains(t, out, "[create]")
	assert.Contains(t, out, "resource.created")
	assert.Contains(t, out, "vpc-123")
	assert.Contains(t, out, "VPC created")
}

func TestProvisioningError_Format(t *testing.T) {
	err := &ProvisioningError{
		Step: "subnet:public",
		Code: "InvalidSubnet.Range",
		Err:  assert.AnError,
	}

	assert.Contains(t, err.Error(), "subnet:public")
	assert.Contains(t, err.Error(), "InvalidSubnet.Range")
	assert.ErrorIs(t, err, assert.AnError)
}
