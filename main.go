package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/namanyt/tictactoe/internal/tictactoe/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := tictactoe(); err != nil {
		logrus.Fatal(err)
	}
}

func tictactoe() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
