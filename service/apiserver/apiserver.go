package apiserver

import (
	"sync"

	"github.com/labstack/echo"
)

// APIServer provides the json rpc endpoints of the launch node
type APIServer struct {
	sync.Mutex
	e      *echo.Echo
	subMap map[string]*JRPCSub
}

// NewAPIServer returns a APIServer
func NewAPIServer() *APIServer {
	s := &APIServer{
		e:      echo.New(),
		subMap: map[string]*JRPCSub{},
	}
	s.e.HideBanner = true
	return s
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, ErrExistSubName
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}
