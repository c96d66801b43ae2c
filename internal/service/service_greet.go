package service

import (
	"context"
	"fmt"
)

// DefaultGreetName is used when no name is supplied.
const DefaultGreetName = "stranger"

type greetService struct{}

func NewGreetService() GreetService {
	return greetService{}
}

func (greetService) Greet(_ context.Context, name string) string {
	if name == "" {
		name = DefaultGreetName
	}
	return fmt.Sprintf("Hello, %s!", name)
}
