package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Acknowledgement is the application-visible JSON envelope a module's
// on_recv_packet_execute callback returns (spec §6 "Acknowledgement JSON").
// Exactly one of Result or Error is set.
type Acknowledgement struct {
	Result []byte
	Error  string
}

type ackJSON struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewResultAcknowledgement builds a successful acknowledgement.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{Result: result}
}

// NewErrorAcknowledgement builds an error acknowledgement whose text is the
// canonical wrapper (spec §6) followed by err's message.
func NewErrorAcknowledgement(err error) Acknowledgement {
	return Acknowledgement{Error: fmt.Sprintf("error handling packet on destination chain: see events for details: %s", err.Error())}
}

// Success reports whether this is a Result acknowledgement.
func (a Acknowledgement) Success() bool { return a.Error == "" }

// Marshal encodes the acknowledgement to its wire JSON form.
func (a Acknowledgement) Marshal() []byte {
	var j ackJSON
	if a.Success() {
		j.Result = base64.StdEncoding.EncodeToString(a.Result)
	} else {
		j.Error = a.Error
	}
	b, err := json.Marshal(j)
	if err != nil {
		panic(err)
	}
	return b
}
