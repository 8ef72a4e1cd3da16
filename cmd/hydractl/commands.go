package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goodnatureofminers/hydractl/internal/cluster"
	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"go.uber.org/zap"
)

type statusCommand struct {
	app *app
}

func (c *statusCommand) Execute([]string) error {
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICIPANT\tSTATE\tHEAD\tCOMMITTED\tDEADLINE\tL1 TIP\tNODE KEY")
	for _, p := range cl.Participants() {
		head, err := p.Head().QueryHead(c.app.ctx)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\t\n", p.URL(), err)
			continue
		}
		headID, deadline := "-", "-"
		if head.Contents != nil && head.Contents.HeadID != "" {
			headID = head.Contents.HeadID
		}
		if d, ok := hydra.ContestationDeadline(head); ok {
			deadline = d.Format("2006-01-02T15:04:05Z07:00")
		}
		tip := "-"
		if chain, err := p.ChainStatus(c.app.ctx); err == nil {
			tip = fmt.Sprintf("slot %d, start %s", chain.Tip.Slot, chain.SystemStart.Format("2006-01-02"))
		}
		nodeKey := "-"
		if key, err := p.NodeKey(); err == nil {
			nodeKey = hex.EncodeToString(key)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			p.URL(), head.State(), headID, len(hydra.CommittedAddresses(head)), deadline, tip, nodeKey)
	}
	return w.Flush()
}

type resetCommand struct {
	app *app

	Contested   bool `long:"contested" description:"fan out a head that is ready to fan out and close it again (target Closed)"`
	FanoutReady bool `long:"fanout-ready" description:"stop once the head may be fanned out (target Closed)"`
	Args        struct {
		State string `positional-arg-name:"state" required:"true"`
	} `positional-args:"yes"`
}

func (c *resetCommand) Execute([]string) error {
	target, err := hydra.ParseHeadState(c.Args.State)
	if err != nil {
		return err
	}
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	if c.Contested || c.FanoutReady {
		if target != hydra.StateClosed {
			return fmt.Errorf("--contested and --fanout-ready apply to Closed, not %s", target)
		}
		return cl.ResetToClosed(c.app.ctx, &cluster.ClosedOptions{Contested: c.Contested, FanoutReady: c.FanoutReady})
	}
	if err := cl.Reset(c.app.ctx, target); err != nil {
		return err
	}
	c.app.logger.Info("Cluster reset", zap.Stringer("state", target))
	return nil
}

type verifyCommand struct {
	app *app
}

func (c *verifyCommand) Execute([]string) error {
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	state, err := cl.VerifyConsensus(c.app.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "all %d participants report %s\n", len(cl.Participants()), state)
	return nil
}

type fundsCommand struct {
	app *app

	Min string `long:"min" description:"balance every participant must exceed" default:"1A"`
}

func (c *fundsCommand) Execute([]string) error {
	minAmount, err := hydra.ParseValue(c.Min)
	if err != nil {
		return err
	}
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	for _, p := range cl.Participants() {
		balance, err := p.Balance(c.app.ctx)
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s\terror: %v\n", p.URL(), err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", p.URL(), balance)
	}
	return cl.MissingFunds(c.app.ctx, minAmount)
}

type commitCommand struct {
	app *app

	Participant int `long:"participant" short:"p" description:"index of the participant in the topology file" default:"0"`
}

func (c *commitCommand) Execute([]string) error {
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	p, err := cl.Participant(c.Participant)
	if err != nil {
		return err
	}
	engine := cl.Engine()
	res, err := p.Commit(c.app.ctx, engine.Threshold(), engine.Timeouts())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "committed from %s in %s\n", p.URL(), res.TxID())
	return nil
}

type decommitCommand struct {
	app *app

	Participant int      `long:"participant" short:"p" description:"index of the participant in the topology file" default:"0"`
	TxIns       []string `long:"txin" description:"UTxO to release, as txhash#index" required:"true"`
}

func (c *decommitCommand) Execute([]string) error {
	ins := make([]hydra.TxIn, 0, len(c.TxIns))
	for _, s := range c.TxIns {
		in, err := hydra.ParseTxIn(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		ins = append(ins, in)
	}
	cl, err := c.app.cluster()
	if err != nil {
		return err
	}
	p, err := cl.Participant(c.Participant)
	if err != nil {
		return err
	}
	return p.Decommit(c.app.ctx, ins, cl.Engine().Timeouts())
}
