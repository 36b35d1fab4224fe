// Package help holds the quick start text printed by `vocab quickstart`.
package help

const ColdstartYAML = `# vocab Quick Start

inputs:
  files: "Plain text files, one or more paths"
  stdin: "Pass - to read standard input"
  html: ".html/.htm paths count visible text; --readable keeps the main article only"
  text: "--text \"some words\""
  glob: "--glob \"**/*.txt\" --root ./corpus"
  sqlite: "--sqlite notes.db --query \"SELECT body FROM notes\""

sort_options:
  alphabetical: "a to z"
  alphabeticalDescending: "z to a"
  frequency: "least frequent first"
  frequencyDescending: "most frequent first (default)"

commands:
  basic_build: |
    vocab build notes.txt

  from_stdin: |
    cat *.txt | vocab build -

  top_words_as_text: |
    vocab build --format text --top 10 book.txt

  filtered: |
    vocab build --stopwords --stem --glob "**/*.md"

  language: |
    vocab build --detect-language page.html

  large_input: |
    vocab build --batch-size 5000 --workers 8 --progress big.txt

config_file: |
  # vocab.yaml (flags override these values)
  build:
    batch_size: 1000
    workers: 0        # one per CPU
    stopwords: false
    stem: false
  output:
    format: yaml      # yaml, json or text
    sort: frequencyDescending
    top: 25           # 0 prints every word
    detect_language: false
  logging:
    level: info

exit_codes:
  0: "success"
  1: "unexpected failure"
  2: "invalid configuration or flags"
  3: "input missing or unreadable"
  4: "input is not valid UTF-8"
`
