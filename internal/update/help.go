package update

const helpMarkdown = `# Commands

| command | arguments |
|---|---|
| add | <start> <end> [high/medium/low] <description> |
| remove | <description> |
| list | |
| priority | <high/medium/low> |
| edit | <start> <end> <priority> <description> |
| done | <description> |
| clear | |
| quit | |

Times use 24-hour HH:MM. A task may start exactly when another ends.
`
