package server

import (
	"encoding/gob"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathfinder/model"
	"github.com/zucenko/pathfinder/pathfind"
)

func NewSolveServer() *SolveServer {
	return &SolveServer{
		Sessions: make(chan *SolveSession, 0),
		Upgrader: &websocket.Upgrader{},
	}
}

func (s *SolveServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - Connection received.............................")

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		defer con.Close()

		ss := &SolveSession{
			State:          SS_NEW,
			Conn:           con,
			Done:           make(chan struct{}),
			MessagesToSend: make(chan model.ServerMessage, 16),
		}

		con.SetPingHandler(
			func(message string) error {
				err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
				ss.DebugLastPing = time.Now()
				ss.DebugPings++
				if err == websocket.ErrCloseSent {
					return nil
				} else if e, ok := err.(net.Error); ok && e.Temporary() {
					return nil
				}
				return err
			})

		select {
		case s.Sessions <- ss:
			log.Printf("HandleHttpCall -> SolveServer.Sessions")
		case <-time.After(timeout):
			log.Warn("Sessions TIMEOUTED")
		}

		// start sending from server
		go ss.LoopChannelWrite()
		// process layouts from the client
		go ss.LoopChannelRead()

		// wait till the session is over
		log.Info("HandleHttpCall and wait for session end ")
		<-ss.Done
	}
}

func (s *SolveServer) Loop() {
	log.Printf("SolveServer.Loop starting")
	accepted := 0
	for {
		select {
		case ss := <-s.Sessions:
			accepted++
			log.Printf("SolveServer.Loop session #%d state:%s", accepted, ss.State.Name())
		}
	}
}

func (ss *SolveSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
loop:
	for {
		messageType, r, err := ss.Conn.NextReader()
		if err != nil {
			if ss.State == SS_OVER {
				log.Printf("LoopChannelRead closed after solve")
			} else {
				log.Printf("LoopChannelRead err reading message from Conn %v", err)
				ss.State = SS_ERR
			}
			break loop
		}
		log.Printf("LoopChannelRead received message type: %d", messageType)
		dec := gob.NewDecoder(r)
		cm := &model.ClientMessage{}
		err = dec.Decode(cm)
		if err != nil {
			log.Warn("cant decode")
			ss.State = SS_ERR
			break loop
		}
		log.Info(cm)
		ss.DebugLastMessage = time.Now()
		ss.DebugInMessages++

		grid, err := BuildGrid(cm)
		if err != nil {
			log.Warnf("LoopChannelRead bad layout %v", err)
			ss.State = SS_ERR
			break loop
		}
		ss.Grid = grid
		ss.State = SS_SOLVING
		ss.MessagesToSend <- MakeSetupMessage(grid)

		result, err := RunSolve(grid, cm.Animate, func(mes model.ServerMessage) {
			ss.MessagesToSend <- mes
		})
		if err != nil {
			log.Warnf("LoopChannelRead solve err %v", err)
			ss.State = SS_ERR
			break loop
		}
		ss.MessagesToSend <- model.ServerMessage{Results: []model.SolveResult{result}}
		ss.State = SS_OVER
	}
	close(ss.Done)
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (ss *SolveSession) LoopChannelWrite() {
	log.Printf("SolveSession.LoopChannelWrite STARTED")
loop:
	for {
		select {
		case mes := <-ss.MessagesToSend:
			if ss.State == SS_ERR {
				log.Printf("LoopChannelWrite it was close event")
				break loop
			}
			w, err := ss.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("SolveSession.LoopChannelWrite cant get writer %v", err)
				ss.State = SS_ERR
				break loop
			}
			enc := gob.NewEncoder(w)
			err = enc.Encode(mes)
			if err != nil {
				log.Warnf("SolveSession.LoopChannelWrite cant encode %v", err)
				ss.State = SS_ERR
				break loop
			}
			err = w.Close()
			if err != nil {
				log.Warnf("SolveSession.LoopChannelWrite cant close writer %v", err)
				ss.State = SS_ERR
				break loop
			}
			ss.DebugOutMessages++
		case <-ss.Done:
			break loop
		}
	}
	log.Printf("LoopChannelWrite ENDED")
}

// BuildGrid turns a wire layout into a grid. UseDemo ignores the layout and
// loads the bundled level instead.
func BuildGrid(cm *model.ClientMessage) (*model.Grid, error) {
	if cm.UseDemo {
		return Load()
	}
	if cm.Cols < 2 || cm.Rows < 2 {
		return nil, fmt.Errorf("layout %dx%d too small", cm.Cols, cm.Rows)
	}
	g := model.NewEmptyGrid(cm.Cols, cm.Rows)
	start := g.Cell(cm.StartCol, cm.StartRow)
	if start == nil {
		return nil, fmt.Errorf("start %d:%d out of layout", cm.StartCol, cm.StartRow)
	}
	target := g.Cell(cm.TargetCol, cm.TargetRow)
	if target == nil {
		return nil, fmt.Errorf("target %d:%d out of layout", cm.TargetCol, cm.TargetRow)
	}
	if start == target {
		return nil, fmt.Errorf("start and target both at %d:%d", cm.StartCol, cm.StartRow)
	}
	g.SetStart(start)
	g.SetTarget(target)
	for _, o := range cm.Obstacles {
		g.ToggleObstacle(g.Cell(o[0], o[1]))
	}
	return g, nil
}

func MakeSetupMessage(g *model.Grid) model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{
			Cols:      g.Cols,
			Rows:      g.Rows,
			StartCol:  g.Start.Col,
			StartRow:  g.Start.Row,
			TargetCol: g.Target.Col,
			TargetRow: g.Target.Row,
			Obstacles: g.Obstacles(),
		}},
		Steps:   []model.SolveStep{},
		Results: []model.SolveResult{},
	}
}

// RunSolve searches the grid and reports through send: one message per
// expansion when animate is set, nothing otherwise. The final result message
// is the caller's to send, the returned value is ready for the wire.
func RunSolve(g *model.Grid, animate bool, send func(model.ServerMessage)) (model.SolveResult, error) {
	engine := pathfind.NewEngine(g)
	start := pathfind.Cell{Row: g.Start.Row, Col: g.Start.Col}
	target := pathfind.Cell{Row: g.Target.Row, Col: g.Target.Col}

	steps := 0
	onStep := func(current pathfind.Cell, queued int) error {
		steps++
		if animate {
			send(model.ServerMessage{Steps: []model.SolveStep{{
				Col:    current.Col,
				Row:    current.Row,
				Queued: queued,
				Open:   openCells(engine, g),
			}}})
		}
		return nil
	}

	result, err := engine.Run(start, target, pathfind.WithOnStep(onStep))
	if err != nil {
		return model.SolveResult{}, err
	}

	path := make([][2]int, 0, len(result.Path))
	for _, c := range result.Path {
		path = append(path, [2]int{c.Col, c.Row})
	}
	return model.SolveResult{
		Found:     result.Found,
		Path:      path,
		TotalCost: result.TotalCost,
		Steps:     steps,
	}, nil
}

func openCells(engine *pathfind.Engine, g *model.Grid) [][2]int {
	open := make([][2]int, 0)
	for _, column := range g.Matrix {
		for _, c := range column {
			if engine.Membership(pathfind.Cell{Row: c.Row, Col: c.Col}) == pathfind.Open {
				open = append(open, [2]int{c.Col, c.Row})
			}
		}
	}
	return open
}
