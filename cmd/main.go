package main

import (
	"context"

	"mediconnect/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := bootstrap.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.Fatalf("mediconnect: %v", err)
	}
}
