//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Command rouge scores candidate summaries against references.
package main

import (
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

func main() {
	cmd := newRootCmd()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		log.Fatalf("rouge: %v", err)
	}
}
