package layout

// sampleDeck exercises every layout once; each slide carries speaker notes.
const sampleDeck = `{
  "title": "Postgres Failover Runbook",
  "subtitle": "Primary loss recovery",
  "author": "Dana Ops",
  "organization": "Platform SRE",
  "slides": [
    {"layout": "title", "speakerNotes": "SECRET-NOTE 0"},
    {"layout": "agenda", "title": "Agenda", "items": ["Detect", "Promote", "Verify"], "speakerNotes": "SECRET-NOTE 1"},
    {"layout": "pain-points", "title": "Pain", "items": [{"title": "Lag", "type": "warning"}, {"title": "Split brain", "type": "danger"}],
     "keyInsight": {"title": "Insight", "content": "Automate promotion"}, "speakerNotes": "SECRET-NOTE 2"},
    {"layout": "two-column", "title": "Roles", "leftColumn": {"title": "Primary", "items": ["writes"]}, "rightColumn": {"title": "Replica", "items": ["reads"]}, "speakerNotes": "SECRET-NOTE 3"},
    {"layout": "comparison", "title": "Before/After", "leftColumn": {"title": "Manual", "items": ["slow"]}, "rightColumn": {"title": "Scripted", "items": ["fast"]}, "speakerNotes": "SECRET-NOTE 4"},
    {"layout": "three-column", "title": "Tiers", "columns": [{"title": "Hot", "items": ["a"]}, {"title": "Warm"}], "speakerNotes": "SECRET-NOTE 5"},
    {"layout": "table", "title": "Timings", "tableData": {"headers": ["Step", "Seconds"], "rows": [["detect", "5"], ["promote", "12"]]}, "speakerNotes": "SECRET-NOTE 6"},
    {"layout": "problems", "title": "Problems", "problems": [{"problem": "DNS TTL", "solution": "lower it"}], "speakerNotes": "SECRET-NOTE 7"},
    {"layout": "operations", "title": "Ops", "operations": [{"title": "Promote", "description": "run", "command": "pg_ctl promote"}, {"title": "Check", "description": "look"}], "speakerNotes": "SECRET-NOTE 8"},
    {"layout": "takeaways", "title": "Takeaways", "items": [{"title": "Practice"}], "keyInsight": {"title": "Remember", "content": "Drill monthly"}, "speakerNotes": "SECRET-NOTE 9"},
    {"layout": "questions", "title": "Questions?", "speakerNotes": "SECRET-NOTE 10"},
    {"layout": "architecture", "title": "Topology", "content": "Two nodes behind a pooler", "items": ["pgbouncer", "primary", "replica"], "speakerNotes": "SECRET-NOTE 11"},
    {"layout": "monitoring", "title": "Signals", "items": [{"title": "replication lag", "type": "info"}, {"title": "errors", "type": "danger"}], "speakerNotes": "SECRET-NOTE 12"},
    {"layout": "unknown_layout_xyz", "title": "Mystery", "content": "Body", "speakerNotes": "SECRET-NOTE 13"}
  ]
}`
