package seed

const sampleYAML = `
lenders:
  - lender_id: 0123456789abcdef0123456789abcdef
    name: Harbor Home Loans
    website: https://harbor.example.com
    rates:
      - loan_type: conventional
        loan_term: 30
        interest_rate: 6.125
        apr: 6.311
        points: 0.5
        min_credit_score: 620
        max_loan_amount: 766550
        min_down_payment_percent: 3
        closing_costs: 4200.50
      - loan_type: fha
        loan_term: 15
        interest_rate: 5.5
        apr: 5.9
        points: 0
        min_credit_score: 580
        max_loan_amount: 498257
        min_down_payment_percent: 3.5
        closing_costs: null
  - name: Summit Credit Union
    active: false
    rates:
      - loan_type: va
        loan_term: 30
        interest_rate: 5.75
        apr: 5.95
        points: 0.25
        min_credit_score: 600
        max_loan_amount: 1000000
        min_down_payment_percent: 0
        active: false
`
