package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/client"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/pkg/errors"
)

var (
	Version   string
	GitCommit string
	GitBranch string
)

func init() {
	if Version = data.Version; Version == "" {
		Version = "<no_version_provided>"
	}
	if GitCommit = data.GitCommit; GitCommit == "" {
		GitCommit = "<no_git_commit>"
	}
	if GitBranch = data.GitBranch; GitBranch == "" {
		GitBranch = "<no_git_branch>"
	}
}

func main() {
	args := os.Args[1:]
	envs := make(map[string]string)
	for _, env := range os.Environ() {
		if s := strings.Split(env, "="); len(s) > 1 {
			envs[s[0]] = strings.Join(s[1:], "=")
		}
	}
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	if err := Main(args, envs, osSignal); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Exit(1)
	}
}

func printJson(item []byte) error {
	var buffer bytes.Buffer

	if err := json.Indent(&buffer, item, "", " "); err != nil {
		return err
	}
	fmt.Println(buffer.String())
	return nil
}

func Main(args []string, envs map[string]string, osSignal chan os.Signal) error {
	fmt.Printf("client: go-employee-directory v%s (%s) built from: %s\n",
		Version, GitCommit, GitBranch)

	//create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
		case <-osSignal:
			cancel()
		}
	}()
	ctx = internal.CtxWithCorrelationId(ctx, internal.GenerateId())

	//create logger
	logger := utilities.NewLogger(os.Stderr)
	_ = logger.Configure(envs)

	//create client
	client := client.NewClient(logger)
	if err := client.Configure(envs); err != nil {
		return err
	}
	if err := client.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			logger.Error(ctx, "error while closing client: %s", err)
		}
	}()

	// execute command
	switch command := envs["COMMAND"]; command {
	default:
		return errors.Errorf("unsupported command: %s", command)
	case "employees_list":
		employees, err := client.EmployeesList(ctx)
		if err != nil {
			return err
		}
		return printJson(employees)
	case "employee_read":
		employee, err := client.EmployeeRead(ctx, envs["EMPLOYEE_ID"])
		if err != nil {
			return err
		}
		return printJson(employee)
	case "timers_read":
		timers, err := client.TimersRead(ctx)
		if err != nil {
			return err
		}
		bytes, err := json.MarshalIndent(timers, "", " ")
		if err != nil {
			return err
		}
		fmt.Println(string(bytes))
	case "timers_clear":
		return client.TimersClear(ctx)
	}
	return nil
}
