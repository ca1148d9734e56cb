package types

import "fmt"

// Minimal proto.Message implementations for amino-encoded messages.

func (msg *MsgRelaunch) Reset()         { *msg = MsgRelaunch{} }
func (msg *MsgRelaunch) String() string { return fmt.Sprintf("MsgRelaunch{%s}", msg.Authority) }
func (*MsgRelaunch) ProtoMessage()      {}
