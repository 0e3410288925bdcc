package main

import (
	"context"
	"fmt"
	"syscall/js"
)

type fetchResult struct {
	body []byte
	err  error
}

// fetchBytes reads path relative to the page, bypassing the HTTP cache so
// that an edited config is picked up on reload. The request is aborted when
// ctx is done.
func fetchBytes(ctx context.Context, path string) ([]byte, error) {
	abort := js.Global().Get("AbortController").New()
	done := make(chan fetchResult, 1)

	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		res := args[0]
		if !res.Get("ok").Bool() {
			msg := fmt.Sprintf("%d %s", res.Get("status").Int(), res.Get("statusText").String())
			return js.Global().Get("Promise").Call("reject", js.Global().Get("Error").New(msg))
		}
		return res.Call("arrayBuffer")
	})
	onBody := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		array := js.Global().Get("Uint8Array").New(args[0])
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		done <- fetchResult{body: b}
		return nil
	})
	onFail := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		done <- fetchResult{err: fmt.Errorf("fetch %s: %s", path, args[0].Call("toString").String())}
		return nil
	})
	defer func() {
		onResponse.Release()
		onBody.Release()
		onFail.Release()
	}()

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "same-origin",
		"cache":       "no-cache",
		"signal":      abort.Get("signal"),
	}).Call("then", onResponse).Call("then", onBody).Call("catch", onFail)

	select {
	case r := <-done:
		return r.body, r.err
	case <-ctx.Done():
		abort.Call("abort")
		// The aborted promise still settles through onFail; wait for it
		// before the callbacks are released.
		<-done
		return nil, fmt.Errorf("fetch %s: %w", path, ctx.Err())
	}
}
