package ast

type (
	ExprID    uint32
	StmtID    uint32
	PayloadID uint32
	ArmID     uint32
)

const (
	NoExprID    ExprID    = 0
	NoStmtID    StmtID    = 0
	NoPayloadID PayloadID = 0
	NoArmID     ArmID     = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id ArmID) IsValid() bool     { return id != NoArmID }
