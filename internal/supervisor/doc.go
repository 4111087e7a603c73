// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package supervisor runs the long-lived parts of the service under suture v4.

The tree:

	RootSupervisor ("coolerselect")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (when DUCKDB_CHECKPOINT_INTERVAL > 0)
	├── MessagingSupervisor ("messaging-layer")
	│   └── InvalidationService (catalog-changed events -> cache purge)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Each layer counts its
own failures, so a flapping event router never takes the HTTP server with it.

Supervisor events (start, stop, panic, backoff) are logged through
sutureslog; main passes the zerolog-backed *slog.Logger from the logging
package.

Usage:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.Add(supervisor.LayerMessaging, invalidator)
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(srv, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Run(ctx); err != nil {
	    return err
	}

Service wrappers live in the services subpackage.
*/
package supervisor
