package main

import (
	"context"
	"encoding/json"
	"errors"
	"expvar"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/expvarhandler"
	"github.com/zeebo/blake3"

	"polish-calc-go/model"
	"polish-calc-go/polish-go"
)

// Various counters - see https://pkg.go.dev/expvar for details.
var (
	calcCalls       = expvar.NewInt("calcCalls")
	calcCacheHits   = expvar.NewInt("calcCacheHits")
	calcFailures    = expvar.NewInt("calcFailures")
	calcBadRequests = expvar.NewInt("calcBadRequests")

	calcServer *fasthttp.Server
	// how long a cached answer lives after its last access
	entryExpiry                  = 5 * time.Minute
	coreLogger  polish_go.Logger = polish_go.NopLogger{}
)

const (
	OP_CONVERT   = "convert"
	OP_CALCULATE = "calculate"
	OP_CHECK     = "check"
)

// reserved request arguments; every other argument binds a variable
var kReservedArgs = map[string]bool{"expr": true, "to": true, "notation": true}

type CalcResponse struct {
	Success bool     `json:"success"`
	Result  string   `json:"result,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Cached  bool     `json:"cached"`
}

type calcRequest struct {
	operation string
	notation  polish_go.Notation
	expr      string
	bindings  polish_go.MapPrompter
}

func (this *calcRequest) bindingsString() string {
	names := make([]string, 0, len(this.bindings))
	for name := range this.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+this.bindings[name])
	}
	return strings.Join(parts, ",")
}

func (this *calcRequest) key() string {
	h := blake3.New()
	h.WriteString(fmt.Sprintf("o:%s,n:%s\ne:%s\nb:%s\n", this.operation, this.notation,
		this.expr, this.bindingsString()))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func ParseCalcRequest(ctx *fasthttp.RequestCtx, operation string) (*calcRequest, error) {
	req := calcRequest{operation: operation, bindings: polish_go.MapPrompter{}}
	req.expr = strings.TrimSpace(string(ctx.FormValue("expr")))
	if req.expr == "" {
		return nil, errors.New("missing expr argument")
	}
	arg := "notation"
	if operation == OP_CONVERT {
		arg = "to"
	}
	name := string(ctx.FormValue(arg))
	if name == "" {
		name = "inverse"
	}
	notation, ok := polish_go.ParseNotation(name)
	if !ok {
		return nil, fmt.Errorf("unknown %s '%s' (want direct or inverse)", arg, name)
	}
	req.notation = notation
	bind := func(key, value []byte) {
		if !kReservedArgs[string(key)] {
			req.bindings[string(key)] = string(value)
		}
	}
	ctx.QueryArgs().VisitAll(bind)
	ctx.PostArgs().VisitAll(bind)
	return &req, nil
}

func (this *calcRequest) run() *model.CalcEntry {
	entry := model.CalcEntry{
		Key:        this.key(),
		Operation:  this.operation,
		Notation:   this.notation.String(),
		Expression: this.expr,
		Bindings:   this.bindingsString(),
	}
	var messages []string
	switch this.operation {
	case OP_CONVERT:
		res := polish_go.ConvertExpression(this.notation, this.expr, coreLogger)
		entry.Success = res.IsSuccess()
		entry.Result = res.Value().Join()
		messages = res.Messages()
	default:
		opts := polish_go.EvalOptions{IgnoreUnknown: this.operation == OP_CHECK}
		res := polish_go.CalculateExpression(this.notation, this.expr, this.bindings, opts, coreLogger)
		entry.Success = res.IsSuccess()
		if res.IsSuccess() {
			entry.Result = strconv.Itoa(res.Value())
		}
		messages = res.Messages()
	}
	entry.Errors = strings.Join(messages, "\n")
	return &entry
}

func writeResponse(ctx *fasthttp.RequestCtx, entry *model.CalcEntry, cached bool) {
	resp := CalcResponse{Success: entry.Success, Cached: cached}
	if entry.Success {
		resp.Result = entry.Result
	} else if entry.Errors != "" {
		resp.Errors = strings.Split(entry.Errors, "\n")
	}
	buf, err := json.Marshal(resp)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	if entry.Success {
		ctx.SetStatusCode(fasthttp.StatusOK)
	} else {
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
	}
	ctx.SetBody(buf)
}

// / HandleCalc serves one of the three operations, answering from the cache
// / when the same request was seen before.
func HandleCalc(ctx *fasthttp.RequestCtx, operation string) {
	ctx.Response.Reset()
	calcCalls.Add(1)
	req, err := ParseCalcRequest(ctx, operation)
	if err != nil {
		calcBadRequests.Add(1)
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	key := req.key()
	found, err := FindCalcEntry(key)
	if err == nil {
		calcCacheHits.Add(1)
		if err := UpdateEntryAccess(found.ID); err != nil {
			log.Println(err)
		}
		writeResponse(ctx, found, true)
		return
	}
	if !errors.Is(err, os.ErrNotExist) {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	entry := req.run()
	if !entry.Success {
		calcFailures.Add(1)
	}
	if err := SaveCalcEntry(entry, entryExpiry); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	writeResponse(ctx, entry, false)
}

// Create RequestHandler serving the operations and server stats on /stats.
// /stats output may be filtered using regexps. For example:
//
//   - /stats?r=calc will show only stats (expvars) containing 'calc'
//     in their names.
func requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/stats":
		expvarhandler.ExpvarHandler(ctx)
	case "/convert":
		HandleCalc(ctx, OP_CONVERT)
	case "/calculate":
		HandleCalc(ctx, OP_CALCULATE)
	case "/check":
		HandleCalc(ctx, OP_CHECK)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func Serve(addr string) {
	log.Printf("Starting HTTP server on %q", addr)
	calcServer = &fasthttp.Server{
		Handler:      requestHandler,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	if err := calcServer.ListenAndServe(addr); err != nil {
		log.Fatalf("error in ListenAndServe: %v", err)
	}
}

func shutdown(ctx context.Context) {
	StopScheduler()
	if calcServer != nil {
		if err := calcServer.ShutdownWithContext(ctx); err != nil {
			log.Println(err)
		}
	}
	if err := CloseDb(); err != nil {
		log.Println(err)
	}
}
