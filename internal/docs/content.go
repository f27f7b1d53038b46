package docs

var chapters = []Chapter{
	{
		Name:    "protocol",
		Title:   "How to Solve",
		Summary: "What this protocol is and how to use it",
		Content: chapterProtocol,
	},
	{
		Name:    "see",
		Title:   "Chapter 1: The Eye",
		Summary: "How to see: scan, deconstruct, restate, tag",
		Content: chapterSee,
	},
	{
		Name:    "reframe",
		Title:   "Chapter 2: The Frame",
		Summary: "How to reframe: constraints, edge cases, transformation",
		Content: chapterReframe,
	},
	{
		Name:    "approach",
		Title:   "Chapter 3: The Approach",
		Summary: "How to attempt: brute force, optimization hunt, abstraction",
		Content: chapterApproach,
	},
	{
		Name:    "implement",
		Title:   "Chapter 4: The Execution",
		Summary: "How to implement: pseudocode, data structures, complexity",
		Content: chapterImplement,
	},
	{
		Name:    "verify",
		Title:   "Chapter 5: The Verification",
		Summary: "How to test: dry run, edge cases, random testing",
		Content: chapterVerify,
	},
	{
		Name:    "reflect",
		Title:   "Chapter 6: The Loop",
		Summary: "How to reflect and store patterns",
		Content: chapterReflect,
	},
	{
		Name:    "worksheet",
		Title:   "The DP/Greedy Worksheet",
		Summary: "The twelve worksheet sections and how to fill them",
		Content: chapterWorksheet,
	},
}

const chapterProtocol = `How to Solve
============

A step-by-step protocol for problem reframing in data structures and
algorithms. Follow the chapters in order:

  see        Chapter 1: The Eye — How to See
  reframe    Chapter 2: The Frame — How to Reframe
  approach   Chapter 3: The Approach — How to Attempt
  implement  Chapter 4: The Execution — How to Implement
  verify     Chapter 5: The Verification — How to Test
  reflect    Chapter 6: The Loop — How to Reflect & Store

Execute sequentially. Repeat until mastery.

You are not solving one problem. You are building a ladder of patterns.
Each step is a rung. Climb methodically.
`

const chapterSee = `Chapter 1: The Eye — How to See
===============================

Step 1.1 — Initial Scan
-----------------------

  - Read the problem statement.
  - Do not think. Only absorb words.

Step 1.2 — Lexical Deconstruction
---------------------------------

  - Nouns       → data structures hinted (array, tree, graph, string).
  - Verbs       → operations required (find, count, return, minimize, maximize).
  - Constraints → numbers (size of input, range of values).
  - Examples    → concrete instances.

Write each in isolated boxes on paper. No connections yet.

Step 1.3 — Naive Restatement
----------------------------

  - Rephrase the problem in one simple sentence of your own words.
    Example: "Given a list of numbers, find two that add to target."
  - If you cannot rephrase, return to Step 1.2.

Step 1.4 — Pattern Matching
---------------------------

  "find two that add"  → two sum → hash map
  "subarray"           → sliding window / prefix sum
  "tree path"          → DFS / BFS
  "minimum/maximum"    → greedy / DP / heap
  "all possible ways"  → backtracking / DP

Tag the problem with every pattern that matches. No decision yet.
`

const chapterReframe = `Chapter 2: The Frame — How to Reframe
=====================================

Step 2.1 — Constraint Analysis
------------------------------

  n ≤ 10³  → O(n²) may be okay
  n ≤ 10⁵  → O(n log n) likely
  n ≤ 10⁶  → O(n) needed

This eliminates impossible approaches.

Step 2.2 — Edge Case Generation
-------------------------------

Empty input, single element, sorted / reverse sorted, all same values,
large values. Do not solve, just list.

Step 2.3 — Visualization
------------------------

  - Draw the given example, then one you invent.
  - Draw the brute force process step by step.
  - Observe where repetition occurs. Repetition is an optimization clue.

Step 2.4 — Problem Transformation
---------------------------------

  1. Can this be viewed as a graph problem? (nodes, edges)
  2. Can this be reduced to a known problem? (sorting, searching)
  3. Can the data be rearranged? (sorting preprocessing)
  4. Is this a decision, optimization, or enumeration problem?
  5. What is the smallest subproblem?

Write the answers down.
`

const chapterApproach = `Chapter 3: The Approach — How to Attempt
========================================

Step 3.1 — Brute Force Generation
---------------------------------

Write the brute force in pseudocode even if inefficient. The point is to
understand the exhaustive search space. Identify bottlenecks: nested loops,
repeated calculations.

Step 3.2 — Optimization Hunt
----------------------------

  - What is being recomputed? → memoization
  - Can a data structure speed this up? (hash map, heap, set)
  - Is the input sorted? Should it be?
  - Can two pointers avoid nested loops?

Step 3.3 — Pattern Selection
----------------------------

Revisit the tags from Step 1.4. Select one primary pattern based on the
constraints and the optimization hunt. If in conflict, choose the simpler
pattern first.

Step 3.4 — Abstraction
----------------------

  state       what defines a subproblem
  transition  how to move between states
  base case   smallest solvable unit
  goal        final state needed

This applies even if the solution is not DP.
`

const chapterImplement = `Chapter 4: The Execution — How to Implement
===========================================

Step 4.1 — Pseudocode Skeleton
------------------------------

Write the function signature, then the high-level steps in plain language,
then fill in each step from the abstraction.

Step 4.2 — Data Structure Selection
-----------------------------------

  fast lookup      → hash map / hash set
  min/max quickly  → heap
  order            → stack / queue / deque
  parent-child     → tree / trie
  connections      → adjacency list / matrix

Step 4.3 — Algorithm Outline
----------------------------

  1. Initialize.
  2. Process input (maybe sort).
  3. Set up the loop invariant.
  4. Iterate with the invariant maintained.
  5. Update the result.
  6. Return the result.

Step 4.4 — Complexity Verification
----------------------------------

Compute time complexity from loops and operations, space complexity from the
data structures used, and verify both against the constraints.
`

const chapterVerify = `Chapter 5: The Verification — How to Test
=========================================

Step 5.1 — Dry Run
------------------

Take a small example and execute the algorithm step by step on paper. Check
for off-by-one errors, initialization and loop boundaries.

Step 5.2 — Edge Case Test
-------------------------

Run the algorithm on the edge cases from Step 2.2. Fix failures.

Step 5.3 — Random Testing
-------------------------

Generate random input within the constraints and compare the brute force
output with your algorithm's output. If they differ, debug.

Step 5.4 — Final Checklist
--------------------------

  [ ] Input size handled?
  [ ] Overflow handled? (ints/longs)
  [ ] Null/empty input handled?
  [ ] Return type correct?
  [ ] All examples pass?
`

const chapterReflect = `Chapter 6: The Loop — How to Reflect & Store
============================================

Step 6.1 — Pattern Archiving
----------------------------

After solving, categorize the problem: pattern name, key insight, variation
clues. Store it in memory with three similar problems.

Step 6.2 — Retrospective
------------------------

  - What was the bottleneck in my thinking?
  - Did I miss a clue?
  - Could I have arrived faster?

Step 6.3 — Generalize
---------------------

Formulate a one-line insight, e.g. "When you need pairs satisfying a
condition, consider sorting + two pointers or a hash map." This becomes a
new rule for your machine.

Step 6.4 — Reset
----------------

Clear working memory. Prepare for the next problem.
`

const chapterWorksheet = `The DP/Greedy Worksheet
=======================

Fill the template for each problem, THEN write code. If stuck, fix the
template, not the code.

   1  Problem type        Count ways / Min / Max / Possible / Optimize
   2  Constraints         n, range of n, values range, time pressure
   3  Can I simulate?     yes if n is small, otherwise DP / greedy
   4  dp[i] definition    what one state means
   5  Decisions           the options at each step (two or three)
   6  Transition          how dp[i] is built from earlier states
   7  Base cases          dp[0] and dp[1]
   8  Order               left → right, right → left, or nested loops
   9  DP optimization     which past states are truly needed (O(1) space?)
  10  Greedy possible?    the local choice and why the future can't break it
  11  Final answer        dp[...]
  12  Intuition           one line, e.g. "choosing or skipping"

Session commands
----------------

  set <field> <value>   edit a field (run 'fields' for paths)
  toggle <tag|n>        toggle a problem type
  new / tab <n> / delete [n] / tabs / show
  export [json|md|xlsx] save the collection; save writes the active tab only
  copy                  copy the active worksheet as JSON
`
