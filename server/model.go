package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/pathfinder/model"
)

type SolveServer struct {
	Sessions chan *SolveSession
	Upgrader *websocket.Upgrader
}

type SolveSessionState int

const (
	SS_NEW SolveSessionState = iota + 1
	SS_SOLVING
	SS_OVER
	SS_ERR
)

type SolveSession struct {
	State SolveSessionState
	Grid  *model.Grid
	Conn  *websocket.Conn
	Done  chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}

//
