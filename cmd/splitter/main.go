package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"bot-lab/identifier"
	"bot-lab/internal"
	"bot-lab/memory"
	"bot-lab/outbound"
	"bot-lab/runtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run reads messages from stdin (one per line, optional "#target " prefix),
// pushes them through the outbound pipeline under supervision, and prints
// what would go on the wire plus a per-target summary.
func run() error {
	target := flag.String("target", "#demo", "default target for lines without a #target prefix")
	logfile := flag.String("logfile", "", "also append wire output to this file")
	pidfile := flag.String("pidfile", "", "refuse to start while the PID in this file is alive")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if *pidfile != "" {
		if err := guardPidfile(*pidfile); err != nil {
			return err
		}
		defer os.Remove(*pidfile)
	}

	// 2. Wire output: stdout, optionally teed into a log file
	var out io.Writer = os.Stdout
	if *logfile != "" {
		tee, err := runtime.NewTeeWriter(*logfile, os.Stdout, false)
		if err != nil {
			return err
		}
		defer tee.Close()
		out = tee
	}

	// 3. Casemapping for the per-target summary
	fold, err := identifier.FactoryFor(config.Casemapping)
	if err != nil {
		return err
	}
	counts := memory.NewIdentityMap[int](fold)

	// 4. Pipeline under supervision
	transport := &consoleTransport{out: out, counts: counts}
	queue := make(chan outbound.Message, config.QueueSize)
	pipeline := outbound.NewPipeline(log, transport, queue, config.MaxMessageBytes)
	sup := runtime.NewSupervisor(log, config.RestartInterval).Add(pipeline)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go feed(queue, os.Stdin, *target)

	// Run returns once the queue is closed (stdin EOF) and drained,
	// or when a signal cancels the context.
	sup.Run(ctx)

	summarize(counts, config.MaxMessageBytes)
	return nil
}

// feed enqueues one message per stdin line. Lines starting with '#' route to
// the named target ("#chan the message"); everything else goes to fallback.
func feed(queue chan<- outbound.Message, in io.Reader, fallback string) {
	defer close(queue)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		target, text := fallback, line
		if strings.HasPrefix(line, "#") {
			if sep := strings.Index(line, " "); sep > 0 {
				target, text = line[:sep], line[sep+1:]
			}
		}
		queue <- outbound.NewMessage(target, text)
	}
}

func summarize(counts *memory.IdentityMap[int], maxBytes int) {
	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Target", "Chunks"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	total := 0
	for id, n := range counts.Items() {
		table.Append([]string{string(id), strconv.Itoa(n)})
		total += n
	}

	fmt.Fprintln(os.Stderr, color.Green.Sprintf("%d chunk(s) sent, %d byte budget", total, maxBytes))
	table.Render()
}

// consoleTransport prints chunks the way the wire would see them and counts
// chunks per folded target. Only the pipeline goroutine calls Send.
type consoleTransport struct {
	out    io.Writer
	counts *memory.IdentityMap[int]
}

func (t *consoleTransport) Send(_ context.Context, target, chunk string) error {
	if _, err := fmt.Fprintf(t.out, "PRIVMSG %s :%s\n", target, chunk); err != nil {
		return err
	}
	n, _, err := t.counts.Get(target)
	if err != nil {
		return err
	}
	return t.counts.Set(target, n+1)
}

// guardPidfile refuses to start while a previous instance is alive, then
// claims the file for this process.
func guardPidfile(path string) error {
	if raw, err := os.ReadFile(path); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(raw))); err == nil && runtime.ProcAlive(pid) {
			return fmt.Errorf("already running with PID %d (from %s)", pid, path)
		}
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}
