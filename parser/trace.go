package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/bnf/parse"
)

type tracer struct {
	entry *logrus.Entry
}

// enter logs the start of a rule evaluation. It does nothing unless trace
// logging is enabled.
func enter(rule string, input parse.Scanner, depth int) tracer {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return tracer{}
	}
	entry := logrus.WithFields(logrus.Fields{
		"rule":   rule,
		"offset": input.Offset(),
		"depth":  depth,
	})
	entry.Trace("enter")
	return tracer{entry: entry}
}

func (t tracer) exit(out *outcome) {
	if t.entry == nil {
		return
	}
	fields := logrus.Fields{
		"ok":       out.ok,
		"consumed": out.consumed,
	}
	if out.ok {
		fields["rest"] = out.rest.Offset()
	} else {
		fields["expected"] = out.err.Describe()
	}
	t.entry.WithFields(fields).Trace("exit")
}
