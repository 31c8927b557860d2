package service

import "fmt"

// background launches fn on a goroutine tracked by the shared waitgroup,
// recovering from panics so a failed email can't take the server down.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
