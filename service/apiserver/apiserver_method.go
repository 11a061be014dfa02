package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type reqData struct {
	req   *jRPCRequest
	resCh chan *JRPCResponse
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	reqCh := make(chan *reqData)

	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.POST("/api/endpoints/http", func(c echo.Context) error {
		defer c.Request().Body.Close()
		dec := json.NewDecoder(c.Request().Body)
		dec.UseNumber()

		var req jRPCRequest
		if err := dec.Decode(&req); err != nil {
			return err
		}
		resCh := make(chan *JRPCResponse)
		reqCh <- &reqData{
			req:   &req,
			resCh: resCh,
		}
		res := <-resCh
		if res == nil {
			return c.NoContent(http.StatusOK)
		}
		return c.JSON(http.StatusOK, res)
	})
	s.e.GET("/api/endpoints/websocket", func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
		if err != nil {
			return err
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return err
			}
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()

			var req jRPCRequest
			if err := dec.Decode(&req); err != nil {
				return err
			}
			resCh := make(chan *JRPCResponse)
			reqCh <- &reqData{
				req:   &req,
				resCh: resCh,
			}
			res := <-resCh
			if res != nil {
				if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
					return err
				}
				if err := conn.WriteJSON(res); err != nil {
					return err
				}
			}
		}
	})
	for i := 0; i < 50; i++ {
		go func() {
			for r := range reqCh {
				r.resCh <- s.handleJRPC(r.req)
			}
		}()
	}
	return s.e.Start(BindAddress)
}

func (s *APIServer) handleJRPC(req *jRPCRequest) *JRPCResponse {
	ls := strings.SplitN(req.Method, ".", 2)
	if len(ls) != 2 {
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	s.Lock()
	sub, has := s.subMap[ls[0]]
	s.Unlock()
	if !has {
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	sub.Lock()
	fn, has := sub.funcMap[ls[1]]
	sub.Unlock()
	if !has {
		if req.ID == nil {
			return nil
		}
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   ErrInvalidMethod.Error(),
		}
	}

	ret, err := fn(req.ID, NewArgument(req.Params))
	if req.ID == nil {
		return nil
	}
	res := &JRPCResponse{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
	}
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Result = ret
	}
	return res
}
