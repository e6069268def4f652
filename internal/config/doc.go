// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

/*
Package config loads and validates service configuration using Koanf v2.

Configuration is layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. A YAML config file, found via CONFIG_PATH or the default search paths
 3. TAGWEAVE_* environment variables

Example config.yaml:

	server:
	  port: 8000
	catalog:
	  tags_path: tags.txt
	  artifact_path: data/catalog.json
	text_provider:
	  base_url: http://localhost:8001
	  model: all-MiniLM-L6-v2
	visual_provider:
	  base_url: http://localhost:8002
	  model: clip-ViT-B-32
	recommend:
	  min_confidence: 0.3
	  max_tags: 10
	  weights:
	    text: 0.5
	    image: 0.3
	    video: 0.2

Environment overrides use a fixed mapping (see envMappings), e.g.
TAGWEAVE_PORT=9000 or TAGWEAVE_MIN_CONFIDENCE=0.4. Unknown TAGWEAVE_*
variables are ignored.
*/
package config
